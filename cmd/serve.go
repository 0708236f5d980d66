package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/db"
	"github.com/gtrlab/fretsolve/model"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// maxSymbolsPerRequest matches the DynamoDB batch-get limit so one request
// maps to at most one metadata fetch.
const maxSymbolsPerRequest = 10

var rez *resolver.Resolver

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the resolve API",
	Long:  `Serves the resolve API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// InitResolver prepares the shared resolver; exported so the e2e tests can
// exercise HandleResolve without starting a listener.
func InitResolver() {
	rez = resolver.New(resolver.DefaultConfig())
}

func toChordResult(res model.Resolution, err error) model.ChordResult {
	if err != nil {
		return model.ChordResult{Symbol: res.Symbol, Error: err.Error()}
	}
	cr := model.ChordResult{
		Symbol: res.Symbol,
		Path:   string(res.Path),
		Frets:  res.Fingering.Frets(),
		Notes:  res.Fingering.Notes(),
	}
	if res.Best != nil {
		score := res.Best.Score
		cr.Score = &score
	}
	return cr
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.ResolveRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		fmt.Println("Could not unmarshal request body: " + err.Error())
		http.Error(w, "Request body must be JSON with a symbols array", 400)
		return
	}

	if len(input.Symbols) == 0 || len(input.Symbols) > maxSymbolsPerRequest {
		http.Error(w, fmt.Sprintf("Need between 1 and %v symbols...", maxSymbolsPerRequest), 400)
		return
	}

	results := make([]model.ChordResult, 0, len(input.Symbols))
	var resolved []string
	for _, symbol := range input.Symbols {
		res, err := rez.Resolve(symbol)
		cr := toChordResult(res, err)
		if cr.Error == "" {
			resolved = append(resolved, cr.Symbol)
		}
		results = append(results, cr)
	}

	if constants.GetMetadataTable() != "" && len(resolved) > 0 {
		metadatas := db.GetChordMetadatas(resolved)
		for i := range results {
			if m, ok := metadatas[results[i].Symbol]; ok {
				meta := m
				results[i].Metadata = &meta
			}
		}
	}

	response := model.ResolveResponse{
		RequestId: uuid.New().String(),
		Results:   results,
	}
	json.NewEncoder(w).Encode(response)
}

func serve() {
	InitResolver()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on :%v\n", constants.GetPort())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
