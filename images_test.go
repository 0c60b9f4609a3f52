package ksoft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ksoft-si/ksoftgo/models"
	"github.com/stretchr/testify/assert"
)

func newImageAPI(server *httptest.Server) *ImageAPI {
	return &ImageAPI{http: NewHttpClient("secret", server.URL, 0)}
}

func TestImageAPIRandom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/random-image", r.URL.Path)
		assert.Equal(t, "birb", r.URL.Query().Get("tag"))
		w.Write([]byte(`{"url": "https://cdn.ksoft.si/images/abc.png", "snowflake": "abc", "nsfw": false, "tag": "birb"}`))
	}))
	defer server.Close()

	image, err := newImageAPI(server).Random(context.Background(), "birb", false)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.ksoft.si/images/abc.png", image.URL)
	assert.Equal(t, "birb", image.Tag)
}

func TestImageAPIMeme(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/random-meme", r.URL.Path)
		w.Write([]byte(`{
			"title": "a meme",
			"image_url": "https://i.redd.it/xyz.jpg",
			"source": "https://reddit.com/r/memes/xyz",
			"subreddit": "memes",
			"upvotes": 1000,
			"comments": 42,
			"created_at": 1596096188.0,
			"nsfw": false,
			"author": "someone"
		}`))
	}))
	defer server.Close()

	meme, err := newImageAPI(server).Meme(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "a meme", meme.Title)
	assert.Equal(t, "memes", meme.Subreddit)
	assert.Equal(t, 1000, meme.Upvotes)
	assert.Equal(t, int64(1596096188), meme.CreatedAt.Time().Unix())
}

func TestImageAPIReddit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/rand-reddit/aww", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("remove_nsfw"))
		assert.Equal(t, "week", r.URL.Query().Get("span"))
		w.Write([]byte(`{"title": "a pup", "image_url": "https://i.redd.it/pup.jpg", "subreddit": "aww"}`))
	}))
	defer server.Close()

	post, err := newImageAPI(server).Reddit(context.Background(), "aww", true, "week")
	assert.NoError(t, err)
	assert.Equal(t, "a pup", post.Title)
}

func TestImageAPITags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/tags", r.URL.Path)
		w.Write([]byte(`{
			"models": [{"name": "birb", "nsfw": false}, {"name": "hentai", "nsfw": true}],
			"tags": ["birb"],
			"nsfw_tags": ["hentai"]
		}`))
	}))
	defer server.Close()

	tags, err := newImageAPI(server).Tags(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tags.Models, 2)
	assert.Equal(t, []string{"birb"}, tags.Tags)
	assert.Equal(t, []string{"hentai"}, tags.NSFWTags)
}

func TestNearestTag(t *testing.T) {
	tags := &models.TagCollection{
		Models: []models.Tag{
			{Name: "birb"},
			{Name: "doge"},
			{Name: "pandas"},
		},
	}

	// Exact match, case-insensitive.
	tag, err := NearestTag(tags, "Doge")
	assert.NoError(t, err)
	assert.Equal(t, "doge", tag.Name)

	// A near miss resolves to the closest name.
	tag, err = NearestTag(tags, "pandsa")
	assert.NoError(t, err)
	assert.Equal(t, "pandas", tag.Name)

	_, err = NearestTag(&models.TagCollection{}, "birb")
	assert.ErrorIs(t, err, ErrTagNotFound)

	_, err = NearestTag(nil, "birb")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
