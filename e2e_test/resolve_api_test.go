//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gtrlab/fretsolve/cmd"
	"github.com/gtrlab/fretsolve/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	cmd.InitResolver()

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createResolveReqBody(symbols []string) io.Reader {
	rr := model.ResolveRequestBody{Symbols: symbols}
	data, err := json.Marshal(rr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func doResolve(t *testing.T, symbols []string) (*http.Response, model.ResolveResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/resolve", createResolveReqBody(symbols))
	w := httptest.NewRecorder()
	cmd.HandleResolve(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	var resolveResponse model.ResolveResponse
	if resp.StatusCode == 200 {
		if err := json.Unmarshal(respBody, &resolveResponse); err != nil {
			panic(err.Error())
		}
	}
	return resp, resolveResponse
}

func TestBasicEmChordE2E(t *testing.T) {
	resp, body := doResolve(t, []string{"Em"})

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.NotEmpty(body.RequestId)
	assert.Equal(len(body.Results), 1)

	result := body.Results[0]
	assert.Equal(result.Symbol, "Em")
	assert.Equal(result.Error, "")
	assert.Equal(result.Path, "template")
	assert.Equal(result.Frets, []string{"0", "2", "2", "0", "0", "0"})
}

func TestFallbackChordCarriesScoreE2E(t *testing.T) {
	resp, body := doResolve(t, []string{"G"})

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	result := body.Results[0]
	assert.Equal(result.Path, "fallback")
	assert.NotNil(result.Score)
}

func TestUnknownRootReportedPerSymbolE2E(t *testing.T) {
	resp, body := doResolve(t, []string{"H", "C"})

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Equal(len(body.Results), 2)
	assert.NotEmpty(body.Results[0].Error)
	assert.Equal(body.Results[1].Error, "")
}

func TestEmptySymbolsRejectedE2E(t *testing.T) {
	resp, _ := doResolve(t, nil)
	assert.Equal(t, resp.StatusCode, 400)
}
