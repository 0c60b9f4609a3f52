package ksoft

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/ksoft-si/ksoftgo/models"
)

// BanAPI provides access to the global ban list endpoints.
//
// Unlike the background ban updater, every method here propagates
// transport and API errors to the caller.
type BanAPI struct {
	http *HttpClient
}

// Check reports whether the user is on the global ban list.
func (b *BanAPI) Check(ctx context.Context, userID int64) (banned bool, err error) {
	params := url.Values{"user": {strconv.FormatInt(userID, 10)}}

	var raw json.RawMessage
	if raw, err = b.http.Get(ctx, API_BANS_CHECK, params); err != nil {
		return
	}

	var res struct {
		IsBanned bool `json:"is_banned"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return
	}

	banned = res.IsBanned

	return
}

// Info retrieves detailed information about a user's ban.
// It returns ErrBanNotFound when the user has no ban record.
func (b *BanAPI) Info(ctx context.Context, userID int64) (info *models.BanInfo, err error) {
	params := url.Values{"user": {strconv.FormatInt(userID, 10)}}

	var raw json.RawMessage
	if raw, err = b.http.Get(ctx, API_BANS_INFO, params); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			err = ErrBanNotFound
		}
		return
	}

	info = &models.BanInfo{}
	if err = json.Unmarshal(raw, info); err != nil {
		info = nil
		return
	}

	return
}

// Add submits a new ban report to the global list.
func (b *BanAPI) Add(ctx context.Context, report models.BanReport) (err error) {
	form := url.Values{
		"user":   {strconv.FormatInt(report.User, 10)},
		"reason": {report.Reason},
		"proof":  {report.Proof},
	}
	if report.Moderator != 0 {
		form.Set("mod", strconv.FormatInt(report.Moderator, 10))
	}
	if report.Username != "" {
		form.Set("user_name", report.Username)
	}
	if report.Discriminator != "" {
		form.Set("user_discriminator", report.Discriminator)
	}
	if report.AppealPossible {
		form.Set("appeal_possible", "true")
	}

	var raw json.RawMessage
	if raw, err = b.http.Post(ctx, API_BANS_ADD, form); err != nil {
		return
	}

	var res struct {
		Success bool `json:"success"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return
	}
	if !res.Success {
		return ErrReportRejected
	}

	return
}

// Delete removes a user's ban from the global list.
// With force set, the record is removed entirely instead of being
// marked inactive.
func (b *BanAPI) Delete(ctx context.Context, userID int64, force bool) (err error) {
	params := url.Values{"user": {strconv.FormatInt(userID, 10)}}
	if force {
		params.Set("force", "true")
	}

	_, err = b.http.Delete(ctx, API_BANS_DELETE, params)

	return
}

// List retrieves one page of the global ban list.
//
// Args:
//   - page: Page number, 1-based; 1 when zero.
//   - perPage: Entries per page; DEFAULT_PER_PAGE when zero.
//
// Returns:
//   - *models.BanPage: The requested page.
//   - error: An error if the request fails.
func (b *BanAPI) List(ctx context.Context, page, perPage int) (result *models.BanPage, err error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DEFAULT_PER_PAGE
	}

	params := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}

	var raw json.RawMessage
	if raw, err = b.http.Get(ctx, API_BANS_LIST, params); err != nil {
		return
	}

	result = &models.BanPage{}
	if err = json.Unmarshal(raw, result); err != nil {
		result = nil
		return
	}

	return
}

// Updates retrieves the update feed records since the given watermark,
// in feed order.
func (b *BanAPI) Updates(ctx context.Context, since time.Time) (updates []models.BanUpdate, err error) {
	params := url.Values{"timestamp": {strconv.FormatInt(since.Unix(), 10)}}

	var raw json.RawMessage
	if raw, err = b.http.Get(ctx, API_BANS_UPDATES, params); err != nil {
		return
	}

	var res struct {
		Data []models.BanUpdate `json:"data"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return
	}

	updates = res.Data

	return
}

// Iterator returns a cursor over the whole ban list, page by page.
func (b *BanAPI) Iterator(perPage int) *BanIterator {
	if perPage <= 0 {
		perPage = DEFAULT_PER_PAGE
	}

	return &BanIterator{api: b, page: 1, perPage: perPage}
}

// BanIterator walks the paginated ban list.
type BanIterator struct {
	api     *BanAPI
	page    int
	perPage int
	done    bool
}

// Next fetches the next page of entries.
// It returns ErrStopIteration once the list is exhausted.
func (it *BanIterator) Next(ctx context.Context) ([]models.Ban, error) {
	if it.done {
		return nil, ErrStopIteration
	}

	result, err := it.api.List(ctx, it.page, it.perPage)
	if err != nil {
		return nil, err
	}

	if result.NextPage <= result.Page {
		it.done = true
	} else {
		it.page = result.NextPage
	}

	return result.Data, nil
}
