//go:build declare

package main

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sublee/declare"
)

// Job is a unit of work enqueued through the API.
type Job struct {
	ID       int64         `json:"id"`
	Queue    string        `json:"queue"`
	Priority int           `json:"priority"`
	Retries  int           `json:"retries"`
	Timeout  time.Duration `json:"timeout"`
}

func (Job) Default() Job {
	return Job{Queue: "default", Priority: 5, Retries: 3, Timeout: 30 * time.Second}
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	HideBanner   bool
}

func NewServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		HideBanner:   true,
	}
}

var (
	_ = declare.Type[Job]()
	_ = declare.Type[ServerConfig](declare.Name("server"), declare.DefaultFunc(NewServerConfig))
)

var lastID atomic.Int64

func enqueue(c echo.Context) error {
	Priority, err := strconv.Atoi(c.QueryParam("priority"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be an integer")
	}

	job := declare.Build[Job](`job{
		ID:    lastID.Add(1),
		Queue: c.Param("queue"),
		Priority,
	}`)
	return c.JSON(http.StatusCreated, job)
}

func main() {
	cfg := declare.Build[ServerConfig](`server{ Addr: "127.0.0.1:8080" }`)

	e := echo.New()
	e.HideBanner = cfg.HideBanner
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.POST("/queues/:queue/jobs", enqueue)
	e.Logger.Fatal(e.Start(cfg.Addr))
}
