package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/app"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/charge"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/config"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/events/kafka"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/interfaces"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/settlement"
)

func main() {

	cfg := config.Load()

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers)
		log.Println("Event publishing enabled, brokers:", cfg.KafkaBrokers)
	}

	engine := settlement.NewEngine(charge.NewProcessor())
	application := app.New(engine, publisher)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Identity          string          `json:"identity"`
			Balance           decimal.Decimal `json:"balance"`
			FundingInstrument string          `json:"funding_instrument"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if _, err := application.CreateAccount(req.Identity, req.Balance, req.FundingInstrument); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"Created Account"}`))
	})

	http.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			From   string          `json:"from"`
			To     string          `json:"to"`
			Amount decimal.Decimal `json:"amount"`
			Note   string          `json:"note"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := application.Pay(req.From, req.To, req.Amount, req.Note); err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"Created Payment"}`))
	})

	http.HandleFunc("/friends", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Identity string `json:"identity"`
			Friend   string `json:"friend"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := application.Befriend(req.Identity, req.Friend); err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"Created Friendship"}`))
	})

	http.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		identity := r.URL.Query().Get("identity")
		if identity == "" {
			http.Error(w, "identity is a mandatory field", http.StatusBadRequest)
			return
		}

		lines, err := application.Feed(identity)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}

		response := struct {
			Identity string   `json:"identity"`
			Feed     []string `json:"feed"`
		}{
			Identity: identity,
			Feed:     lines,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	log.Println("Starting server on", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, nil))

}

// errStatus maps unknown-account errors to 404 and everything else the
// domain rejects to 400.
func errStatus(err error) int {
	if errors.Is(err, app.ErrAccountNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
