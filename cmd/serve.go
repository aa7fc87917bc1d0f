package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/transposer/constants"
	"github.com/jsphweid/transposer/db"
	"github.com/jsphweid/transposer/logger"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transposer HTTP API",
	Long:  `Serves the transposer HTTP API with sheets stored in DynamoDB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.NewDynamoStoreFromEnv()
		if err != nil {
			return err
		}
		return serve(store)
	},
}

func NewRouter(store db.SheetStore) http.Handler {
	sheets := &sheetHandlers{store: store}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestTracking)
	router.HandleFunc("/health", HandleHealth).Methods("GET")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/optimize", HandleOptimize).Methods("POST")
	router.HandleFunc("/extract", HandleExtract).Methods("POST")
	router.HandleFunc("/sheets", sheets.HandleCreateSheet).Methods("POST")
	router.HandleFunc("/sheets/{id}", sheets.HandleGetSheet).Methods("GET")
	router.HandleFunc("/sheets/{id}/transpose", sheets.HandleTransposeSheet).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func serve(store db.SheetStore) error {
	addr := ":" + constants.GetPort()
	logger.Info("Starting server", logger.Fields{"addr": addr, "environment": constants.GetEnvironment()})

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(store),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestTracking tags each request with an id and logs its outcome.
func requestTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := logger.Fields{
			"request_id":  requestID,
			"duration_ms": time.Since(start).Milliseconds(),
			"status_code": rec.status,
			"method":      r.Method,
			"path":        r.URL.Path,
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Error("Request failed with server error", fmt.Errorf("status %d", rec.status), fields)
		case rec.status >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}
	})
}
