package ksoft

import (
	"errors"
	"time"
)

const (
	API_BASE_URL = "https://api.ksoft.si"
	USER_AGENT   = "ksoftgo (https://github.com/ksoft-si/ksoftgo)"

	API_TIMEOUT         = 10 * time.Second
	BAN_UPDATE_INTERVAL = 5 * time.Minute
	BAN_UPDATE_BACKLOG  = 10 * time.Minute
	DEFAULT_PER_PAGE    = 20
)

const (
	API_BANS_ADD     = "/bans/add"
	API_BANS_CHECK   = "/bans/check"
	API_BANS_DELETE  = "/bans/delete"
	API_BANS_INFO    = "/bans/info"
	API_BANS_LIST    = "/bans/list"
	API_BANS_UPDATES = "/bans/updates"

	API_IMAGES_RANDOM  = "/images/random-image"
	API_IMAGES_BY_ID   = "/images/image/%s"
	API_IMAGES_MEME    = "/images/random-meme"
	API_IMAGES_AWW     = "/images/random-aww"
	API_IMAGES_WIKIHOW = "/images/random-wikihow"
	API_IMAGES_REDDIT  = "/images/rand-reddit/%s"
	API_IMAGES_TAGS    = "/images/tags"
	API_IMAGES_TAG     = "/images/tags/%s"
)

var (
	ErrNoAPIKey       = errors.New("api key is required")
	ErrNoHost         = errors.New("host is required")
	ErrAlreadyActive  = errors.New("client already started")
	ErrBanNotFound    = errors.New("ban not found")
	ErrReportRejected = errors.New("ban report rejected")
	ErrTagNotFound    = errors.New("tag not found")
	ErrStopIteration  = errors.New("no more pages")
)
