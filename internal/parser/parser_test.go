package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		htmlFixture string
		wantFixture string
	}{
		{
			name:        "extracts title description and words",
			htmlFixture: "parse_full.html",
			wantFixture: "parse_full_expected.json",
		},
		{
			name:        "missing seo fields",
			htmlFixture: "parse_missing_seo.html",
			wantFixture: "parse_missing_seo_expected.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			htmlData := readParserFixture(t, tt.htmlFixture)
			want := readAnalysisFixture(t, tt.wantFixture)

			got := Analyze(string(htmlData), SanitizeOptions{})
			require.Equal(t, want, got)
		})
	}
}

func TestAnalyzeStripQuotes(t *testing.T) {
	t.Parallel()

	htmlData := readParserFixture(t, "parse_full.html")

	got := Analyze(string(htmlData), SanitizeOptions{StripQuotes: true})
	require.Equal(t, "Daily Horoscope for Aries", got.Title)
	require.Equal(t, 25, got.TitleLength)
	require.Equal(t, "Your daily reading & more", got.MetaDescription)
	require.Equal(t, 10, got.WordCount)
}

func TestAnalyzeExcludesScriptText(t *testing.T) {
	t.Parallel()

	body := `<html><body><script>hello world</script><p>real content</p></body></html>`

	got := Analyze(body, SanitizeOptions{})
	require.Equal(t, 2, got.WordCount)
}

func TestAnalyzeEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want PageAnalysis
	}{
		{
			name: "empty body",
			body: "",
			want: PageAnalysis{},
		},
		{
			name: "empty title element",
			body: `<html><head><title></title></head><body></body></html>`,
			want: PageAnalysis{},
		},
		{
			name: "meta without content",
			body: `<html><head><meta name="description"></head><body>one</body></html>`,
			want: PageAnalysis{WordCount: 1},
		},
		{
			name: "first description wins",
			body: `<meta name="description" content="first"><meta name="description" content="second">`,
			want: PageAnalysis{MetaDescription: "first"},
		},
		{
			name: "other meta names ignored",
			body: `<meta name="keywords" content="a, b"><p>x</p>`,
			want: PageAnalysis{WordCount: 1},
		},
		{
			name: "unclosed tags",
			body: `<html><head><title>Broken <b>page</title><body><div><p>alpha beta<p>gamma`,
			want: PageAnalysis{WordCount: 5, Title: "Broken <b>page", TitleLength: 14},
		},
		{
			name: "multibyte title length counts runes",
			body: `<title>Привет мир</title>`,
			want: PageAnalysis{WordCount: 2, Title: "Привет мир", TitleLength: 10},
		},
		{
			name: "header and footer excluded",
			body: `<body><header>skip me</header><main>keep me please</main><footer>skip</footer></body>`,
			want: PageAnalysis{WordCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Analyze(tt.body, SanitizeOptions{})
			require.Equal(t, tt.want, got)
			require.Equal(t, utf8.RuneCountInString(got.Title), got.TitleLength)
		})
	}
}

func readParserFixture(t *testing.T, filename string) []byte {
	t.Helper()

	path := filepath.Join("..", "..", "testdata", "parser", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "read fixture %q", path)

	return data
}

func readAnalysisFixture(t *testing.T, filename string) PageAnalysis {
	t.Helper()

	data := readParserFixture(t, filename)
	result := PageAnalysis{}
	require.NoError(t, json.Unmarshal(data, &result), "unmarshal fixture %q", filename)

	return result
}
