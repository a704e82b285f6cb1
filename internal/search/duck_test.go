package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armanpopli/roastbot/internal/config"
)

const instantAnswerFixture = `{
	"Heading": "Patrick Mahomes",
	"AbstractText": "Patrick Mahomes is an American football quarterback.",
	"AbstractURL": "https://en.wikipedia.org/wiki/Patrick_Mahomes",
	"RelatedTopics": [
		{
			"Text": "Kansas City Chiefs - The professional team Mahomes plays for.",
			"FirstURL": "https://en.wikipedia.org/wiki/Kansas_City_Chiefs"
		},
		{
			"Topics": [
				{
					"Text": "2025 NFL season - The current season.",
					"FirstURL": "https://en.wikipedia.org/wiki/2025_NFL_season"
				}
			]
		},
		{
			"Text": "",
			"FirstURL": "https://example.com/empty"
		}
	]
}`

func testSearchClient(t *testing.T, handler http.HandlerFunc, maxResults int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.Search{BaseURL: server.URL, MaxResults: maxResults})
}

func TestSearchParsesInstantAnswer(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mahomes news", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("no_html"))
		w.Write([]byte(instantAnswerFixture))
	}, 5)

	results, err := client.Search(context.Background(), "mahomes news")
	require.NoError(t, err)
	require.Len(t, results, 3, "abstract + two topics; the empty topic is dropped")

	assert.Equal(t, "Patrick Mahomes", results[0].Title)
	assert.Equal(t, "en.wikipedia.org", results[0].Source)

	// topic text "Name - description" gets cut into a title
	assert.Equal(t, "Kansas City Chiefs", results[1].Title)
	assert.Equal(t, "Kansas City Chiefs - The professional team Mahomes plays for.", results[1].Snippet)

	// nested topic trees are flattened
	assert.Equal(t, "2025 NFL season", results[2].Title)
}

func TestSearchHonorsMaxResults(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(instantAnswerFixture))
	}, 1)

	results, err := client.Search(context.Background(), "mahomes")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchEmptyAnswer(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Heading": "", "AbstractText": "", "RelatedTopics": []}`))
	}, 5)

	results, err := client.Search(context.Background(), "nothing here")
	require.NoError(t, err, "no results is a neutral outcome")
	assert.Empty(t, results)
}

func TestSearchUpstreamFailure(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, 5)

	_, err := client.Search(context.Background(), "mahomes")
	assert.Error(t, err)
}

func TestPlayerNewsRejectsPlaceholders(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("placeholder names must not reach the search API")
	}, 5)

	_, err := client.PlayerNews(context.Background(), "Player 9999999", "2025")
	assert.Error(t, err)

	_, err = client.PlayerNews(context.Background(), "", "2025")
	assert.Error(t, err)
}

func TestPlayerNewsQueryShape(t *testing.T) {
	var query string
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		w.Write([]byte(`{}`))
	}, 5)

	_, err := client.PlayerNews(context.Background(), "Patrick Mahomes", "2025")
	require.NoError(t, err)
	assert.Equal(t, "Patrick Mahomes NFL fantasy football news injury status 2025", query)
}

func TestTeamAnalysisCapsResults(t *testing.T) {
	client := testSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		// enough topics to exceed the cap
		w.Write([]byte(`{"RelatedTopics": [
			{"Text": "a - 1", "FirstURL": "https://x.test/1"},
			{"Text": "b - 2", "FirstURL": "https://x.test/2"},
			{"Text": "c - 3", "FirstURL": "https://x.test/3"},
			{"Text": "d - 4", "FirstURL": "https://x.test/4"}
		]}`))
	}, 10)

	results, err := client.TeamAnalysis(context.Background(), "Arman's Army", "2025")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestTopicTitle(t *testing.T) {
	assert.Equal(t, "Name", topicTitle("Name - description"))
	assert.Equal(t, "no separator here", topicTitle("no separator here"))
}
