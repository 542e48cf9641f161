package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"tikiti/observability"
	"tikiti/service"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logrus.InfoLevel)

	observability.ConfigureTraceProvider()

	apiAddr := os.Getenv("TICKETING_API_ADDR")
	if apiAddr == "" {
		panic("TICKETING_API_ADDR is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc := service.New(apiAddr, fmt.Sprintf(":%s", port), rdb)

	logrus.Info("Server starting...")

	err := svc.Run(ctx)
	if err != nil {
		panic(err)
	}
}
