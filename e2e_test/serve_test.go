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

	"github.com/jsphweid/theorybox/cmd"
	"github.com/jsphweid/theorybox/config"
	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/quiz"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	router, err := cmd.NewRouter(config.Default())
	if err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(router)

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func get(t *testing.T, path string) *http.Response {
	resp, err := http.Get(server.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decoding %s: %v", body, err)
	}
}

func TestPopProgressionInGE2E(t *testing.T) {
	resp := post(t, "/progressions", model.ProgressionRequestBody{Root: "G", Preset: "pop"})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var progression model.Progression
	decode(t, resp, &progression)
	assert.Equal("G Major I-V-vi-IV (Pop)", progression.Name)

	var names []string
	for _, c := range progression.Chords {
		names = append(names, c.Name)
	}
	assert.Equal([]string{"G Major", "D Major", "E Minor", "C Major"}, names)
}

// Every note of a scale should be found on the board the scale is drawn on.
func TestScaleHighlightCoversBoardE2E(t *testing.T) {
	resp := get(t, "/scales/major/E?highlight=true&from=0&to=12")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res struct {
		model.Scale
		Fretboard model.Fretboard `json:"fretboard"`
	}
	decode(t, resp, &res)

	inScale := make(map[int]bool)
	for _, n := range res.Notes {
		inScale[n.Pitch%12] = true
	}
	for s, row := range res.Fretboard.Cells {
		for f, cell := range row {
			assert.Equal(inScale[cell.Pitch%12], res.Fretboard.Highlight[s][f], "string %d fret %d", s, f)
		}
	}
}

func TestQuizAnswersCheckE2E(t *testing.T) {
	resp := get(t, "/quiz/construction?seed=3&count=4")

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var exercises []model.Exercise
	decode(t, resp, &exercises)
	assert.Len(exercises, 4)
	for _, e := range exercises {
		assert.Equal(string(quiz.KindConstruction), e.Kind)
		assert.NotEmpty(e.Answer)
		assert.Len(e.ID, 36)
	}
}

func TestCORSPreflightE2E(t *testing.T) {
	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/progressions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
