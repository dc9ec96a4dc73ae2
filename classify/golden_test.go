package classify

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenToken is one expected sub-token.
type goldenToken struct {
	Text string   `json:"text"`
	Tag  Category `json:"tag"`
}

// goldenCase represents a single golden test case.
type goldenCase struct {
	Name   string        `json:"name"`
	Input  string        `json:"input"`
	Tokens []goldenToken `json:"tokens"`
}

const goldenPath = "../data/golden/classify.json"

func TestGolden(t *testing.T) {
	c := newDefault(t)

	if *updateGolden {
		updateGoldenFile(t, c)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("classify.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got := c.Classify(tc.Input)
			assertLossless(t, got)

			if len(got.Tokens) != len(tc.Tokens) {
				t.Fatalf("Classify(%q) = %s, want %d tokens", tc.Input, got, len(tc.Tokens))
			}
			for i, want := range tc.Tokens {
				if g := got.Tokens[i]; g.Text != want.Text || g.Tag != want.Tag {
					t.Errorf("token %d = %q/%s, want %q/%s", i, g.Text, g.Tag, want.Text, want.Tag)
				}
			}
		})
	}
}

func updateGoldenFile(t *testing.T, c *Classifier) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		res := c.Classify(cases[i].Input)
		cases[i].Tokens = make([]goldenToken, len(res.Tokens))
		for j, tok := range res.Tokens {
			cases[i].Tokens[j] = goldenToken{Text: tok.Text, Tag: tok.Tag}
		}
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}

	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/classify.json")
}
