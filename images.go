package ksoft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ksoft-si/ksoftgo/models"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ImageAPI provides access to the image and meme endpoints.
type ImageAPI struct {
	http *HttpClient
}

// Random retrieves a random image for the given tag.
func (im *ImageAPI) Random(ctx context.Context, tag string, nsfw bool) (*models.Image, error) {
	params := url.Values{"tag": {tag}}
	if nsfw {
		params.Set("nsfw", "true")
	}

	image := &models.Image{}
	if err := im.get(ctx, API_IMAGES_RANDOM, params, image); err != nil {
		return nil, err
	}

	return image, nil
}

// ByID retrieves a single image by its snowflake.
func (im *ImageAPI) ByID(ctx context.Context, snowflake string) (*models.Image, error) {
	path := fmt.Sprintf(API_IMAGES_BY_ID, url.PathEscape(snowflake))

	image := &models.Image{}
	if err := im.get(ctx, path, nil, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Meme retrieves a random meme from the curated subreddit pool.
func (im *ImageAPI) Meme(ctx context.Context) (*models.RedditImage, error) {
	image := &models.RedditImage{}
	if err := im.get(ctx, API_IMAGES_MEME, nil, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Aww retrieves a random cute animal post.
func (im *ImageAPI) Aww(ctx context.Context) (*models.RedditImage, error) {
	image := &models.RedditImage{}
	if err := im.get(ctx, API_IMAGES_AWW, nil, image); err != nil {
		return nil, err
	}

	return image, nil
}

// WikiHow retrieves a random WikiHow illustration.
func (im *ImageAPI) WikiHow(ctx context.Context, nsfwAllowed bool) (*models.WikiHowImage, error) {
	var params url.Values
	if nsfwAllowed {
		params = url.Values{"nsfw-allowed": {"true"}}
	}

	image := &models.WikiHowImage{}
	if err := im.get(ctx, API_IMAGES_WIKIHOW, params, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Reddit retrieves a random image post from the given subreddit.
//
// Args:
//   - subreddit: The subreddit to draw from, without the "r/" prefix.
//   - removeNSFW: Filter out posts marked NSFW.
//   - span: Time span to draw from ("hour", "day", "week", ...), API
//     default when empty.
func (im *ImageAPI) Reddit(ctx context.Context, subreddit string, removeNSFW bool, span string) (*models.RedditImage, error) {
	path := fmt.Sprintf(API_IMAGES_REDDIT, url.PathEscape(subreddit))

	params := url.Values{}
	if removeNSFW {
		params.Set("remove_nsfw", "true")
	}
	if span != "" {
		params.Set("span", span)
	}

	image := &models.RedditImage{}
	if err := im.get(ctx, path, params, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Tags retrieves all tags available on the API.
func (im *ImageAPI) Tags(ctx context.Context) (*models.TagCollection, error) {
	tags := &models.TagCollection{}
	if err := im.get(ctx, API_IMAGES_TAGS, nil, tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// TagSearch retrieves the tags matching the given query.
func (im *ImageAPI) TagSearch(ctx context.Context, query string) (*models.TagCollection, error) {
	path := fmt.Sprintf(API_IMAGES_TAG, url.PathEscape(query))

	tags := &models.TagCollection{}
	if err := im.get(ctx, path, nil, tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// get performs a GET request and decodes the response into out.
func (im *ImageAPI) get(ctx context.Context, path string, params url.Values, out any) (err error) {
	var raw json.RawMessage
	if raw, err = im.http.Get(ctx, path, params); err != nil {
		return
	}

	return json.Unmarshal(raw, out)
}

// NearestTag returns the tag from the collection whose name is closest
// to the query by edit distance. Exact matches win immediately.
// It returns ErrTagNotFound when the collection is empty.
func NearestTag(tags *models.TagCollection, query string) (models.Tag, error) {
	if tags == nil || len(tags.Models) == 0 {
		return models.Tag{}, ErrTagNotFound
	}

	query = strings.ToLower(query)

	var nearest models.Tag
	best := -1
	for _, tag := range tags.Models {
		name := strings.ToLower(tag.Name)
		if name == query {
			return tag, nil
		}

		distance := levenshtein.DistanceForStrings([]rune(query), []rune(name), levenshtein.DefaultOptions)
		if best < 0 || distance < best {
			best = distance
			nearest = tag
		}
	}

	return nearest, nil
}
