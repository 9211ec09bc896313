package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/scrapeo/scrapeo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Queries *scrapeo.QueryBuilder
	Loader  scrapeo.Loader
	Parser  scrapeo.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and query resolution to stderr"`

	Meta      MetaCmd      `cmd:"" aliases:"content" help:"Extract text or attribute values from HTML documents"`
	Shortcuts ShortcutsCmd `cmd:"" help:"List available shortcuts"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	Sources []string `arg:"" name:"source" help:"HTML file, http(s) URL, or - for stdin (repeatable)"`

	Tag     string `short:"t" default:"meta" help:"Tag searched by --attr/--val"`
	Attr    string `short:"a" name:"attr" help:"Attribute name to match"`
	Val     string `name:"val" help:"Attribute value to match (any attribute when --attr is omitted)"`
	SEOAttr string `name:"seo-attr" help:"Attribute to extract from void elements (default: content)"`

	MetaDescription bool     `name:"meta-description" help:"Extract <meta name=description> content"`
	RobotsMeta      bool     `name:"robots-meta" help:"Extract <meta name=robots> content"`
	TitleTag        bool     `name:"title-tag" help:"Extract <title> text"`
	Canonical       bool     `name:"canonical" help:"Extract <link rel=canonical> href"`
	Shortcut        []string `short:"s" name:"shortcut" help:"Enable a shortcut by name (repeatable)"`

	Render      bool          `help:"Render URLs in headless Chrome before extracting"`
	Timeout     time.Duration `default:"10s" env:"SCRAPEO_TIMEOUT" help:"Fetch timeout per URL"`
	Concurrency int           `short:"c" default:"3" env:"SCRAPEO_CONCURRENCY" help:"Sources processed concurrently"`
	Rate        float64       `default:"1" env:"SCRAPEO_RATE" help:"Requests per second per host (0 = unlimited)"`
	UserAgent   string        `name:"user-agent" env:"SCRAPEO_USER_AGENT" help:"User-Agent for URL fetches"`
	Retries     int           `default:"0" env:"SCRAPEO_RETRIES" help:"Retries for failed fetches, with 1s/2s/4s backoff (max 3)"`
}

// ShortcutsCmd is the "shortcuts" subcommand.
type ShortcutsCmd struct{}
