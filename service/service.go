package service

import (
	"context"
	"errors"
	"net/http"

	"tikiti/api"
	"tikiti/catalog"
	"tikiti/checkout"
	tikitiHttp "tikiti/http"
	"tikiti/session"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	echoRouter *echo.Echo
	searches   *catalog.Registry
	addr       string
}

func New(
	apiAddr string,
	addr string,
	redisClient *redis.Client,
) Service {
	apiClient := api.NewClient(apiAddr)

	carts := session.NewCartStore(redisClient)
	sequencer := checkout.NewSequencer(apiClient)
	searches := catalog.NewRegistry(apiClient, apiClient)

	echoRouter := tikitiHttp.NewHttpRouter(
		apiClient,
		apiClient,
		apiClient,
		apiClient,
		carts,
		sequencer,
		searches,
	)

	return Service{
		echoRouter: echoRouter,
		searches:   searches,
		addr:       addr,
	}
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		err := s.echoRouter.Start(s.addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	errgrp.Go(func() error {
		return s.searches.Sweep(ctx)
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
