// launchpad-host runs the launchpad contract inside a local hosting
// environment: durable bbolt state, an account ledger with a faucet, and an
// HTTP surface mirroring the integration RPC shape (base64-encoded
// little-endian records posted as JSON).
package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/caarlos0/env/v11"

	"nostromo_launchpad/contract"
	"nostromo_launchpad/hostenv"
	"nostromo_launchpad/sdk"
)

type config struct {
	ListenAddr   string `env:"LISTEN_ADDR" envDefault:":8421"`
	StatePath    string `env:"STATE_PATH" envDefault:"data/launchpad.db"`
	Admin        string `env:"ADMIN_IDENTITY,required"`
	FaucetAmount int64  `env:"FAUCET_AMOUNT" envDefault:"1000000000"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	admin := sdk.Address(cfg.Admin)
	if !admin.IsValid() {
		return fmt.Errorf("ADMIN_IDENTITY %q is not a valid identity", cfg.Admin)
	}

	logger := log.New(os.Stdout, "launchpad-host ", log.LstdFlags)

	state, err := hostenv.OpenBoltState(cfg.StatePath)
	if err != nil {
		return err
	}
	defer state.Close()

	hostEnv := hostenv.NewEnv(state, logger)
	c := contract.New(state, hostEnv)

	if !c.Initialized() {
		if err := hostEnv.Begin(admin, 0); err != nil {
			return err
		}
		if err := c.Init(); err != nil {
			return err
		}
		if err := state.Flush(); err != nil {
			return err
		}
		logger.Printf("initialized fresh ledger, admin=%s", admin)
	}

	srv := &server{
		cfg:      cfg,
		logger:   logger,
		state:    state,
		env:      hostEnv,
		contract: c,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/invoke", srv.handleInvoke)
	mux.HandleFunc("POST /v1/querySmartContract", srv.handleQuery)
	mux.HandleFunc("POST /v1/faucet", srv.handleFaucet)
	mux.HandleFunc("GET /v1/status", srv.handleStatus)
	mux.HandleFunc("GET /v1/projects/{id}", srv.handleProject)
	mux.HandleFunc("GET /v1/stakes/{identity}", srv.handleStake)
	mux.HandleFunc("GET /v1/balances/{identity}", srv.handleBalance)

	logger.Printf("listening on %s, state=%s", cfg.ListenAddr, cfg.StatePath)
	return http.ListenAndServe(cfg.ListenAddr, mux)
}

type server struct {
	cfg      config
	logger   *log.Logger
	state    *hostenv.BoltState
	env      *hostenv.Env
	contract *contract.Contract

	// mu frames Begin/Invoke/Flush so concurrent requests cannot interleave
	// their call context on the shared env.
	mu sync.Mutex
}

type invokeRequest struct {
	Caller      string `json:"caller"`
	Procedure   uint16 `json:"procedure"`
	Amount      int64  `json:"amount"`
	RequestData string `json:"requestData"`
}

type invokeResponse struct {
	TxID         string `json:"txId"`
	ResponseData string `json:"responseData"`
}

func (s *server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "decode request: %v", err)
		return
	}
	caller := sdk.Address(req.Caller)
	if !caller.IsValid() {
		httpError(w, http.StatusBadRequest, "caller %q is not a valid identity", req.Caller)
		return
	}
	input, err := base64.StdEncoding.DecodeString(req.RequestData)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decode requestData: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.env.Begin(caller, req.Amount); err != nil {
		if errors.Is(err, hostenv.ErrInsufficientFunds) {
			httpError(w, http.StatusPaymentRequired, "%v", err)
			return
		}
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	}
	output, err := s.contract.Invoke(contract.ProcID(req.Procedure), input)
	if err != nil {
		// Roll back state and hand the payment back; the call never ran
		// to completion so its money must not stay with the contract.
		if derr := s.state.Discard(); derr != nil {
			httpError(w, http.StatusInternalServerError, "rollback: %v", derr)
			return
		}
		s.env.Transfer(caller, req.Amount)
		httpError(w, http.StatusBadRequest, "invoke: %v", err)
		return
	}
	if err := s.state.Flush(); err != nil {
		httpError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, invokeResponse{
		TxID:         s.env.TxID(),
		ResponseData: base64.StdEncoding.EncodeToString(output),
	})
}

type queryRequest struct {
	ContractIndex int    `json:"contractIndex"`
	InputType     int    `json:"inputType"`
	InputSize     int    `json:"inputSize"`
	RequestData   string `json:"requestData"`
}

type queryResponse struct {
	ResponseData string `json:"responseData"`
}

func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "decode request: %v", err)
		return
	}
	input, err := base64.StdEncoding.DecodeString(req.RequestData)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decode requestData: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.env.BeginQuery()
	output, err := s.contract.Query(contract.FuncID(req.InputType), input)
	if err != nil {
		httpError(w, http.StatusBadRequest, "query: %v", err)
		return
	}
	writeJSON(w, queryResponse{ResponseData: base64.StdEncoding.EncodeToString(output)})
}

type faucetRequest struct {
	Identity string `json:"identity"`
	Amount   int64  `json:"amount"`
}

func (s *server) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req faucetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "decode request: %v", err)
		return
	}
	addr := sdk.Address(req.Identity)
	if !addr.IsValid() {
		httpError(w, http.StatusBadRequest, "identity %q is not valid", req.Identity)
		return
	}
	amount := req.Amount
	if amount <= 0 {
		amount = s.cfg.FaucetAmount
	}
	if err := s.env.Credit(addr, amount); err != nil {
		httpError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	bal, err := s.env.Balance(addr)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, map[string]int64{"balance": bal})
}

func (s *server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.contract.StatusViewOf())
}

func (s *server) handleProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		httpError(w, http.StatusBadRequest, "bad project id: %v", err)
		return
	}
	view, ok := s.contract.ProjectViewOf(id)
	if !ok {
		httpError(w, http.StatusNotFound, "no project %d", id)
		return
	}
	writeJSON(w, view)
}

func (s *server) handleStake(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")
	view, ok := s.contract.StakeViewOf(identity)
	if !ok {
		httpError(w, http.StatusNotFound, "no stake record for %s", identity)
		return
	}
	writeJSON(w, view)
}

func (s *server) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr := sdk.Address(r.PathValue("identity"))
	bal, err := s.env.Balance(addr)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, map[string]int64{"balance": bal})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	http.Error(w, fmt.Sprintf(format, args...), code)
}
