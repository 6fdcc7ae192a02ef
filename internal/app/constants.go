package app

import "time"

const (
	Name           = "meshlink"
	SourceURL      = "https://git.skobk.in/skobkin/meshlink"
	ConfigFilename = "config.json"
	DBFilename     = "cache.db"
	LogFilename    = "meshlink.log"

	writerQueueCapacity = 256
	closeFlushTimeout   = 5 * time.Second
)
