// Package main EV rental core API.
//
// @title           EV Rental Core API
// @version         1.0
// @description     Rental-order lifecycle core: payment callbacks, license gate, risk scoring.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/esley2005/FE-EV-Rental-sub001/app/echoServer"
	carctrl "github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/controller/car"
	orderctrl "github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/controller/order"
	paymentctrl "github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/controller/payment"
	riskctrl "github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/controller/risk"
	"github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/validation"
	"github.com/esley2005/FE-EV-Rental-sub001/config"
	ledgerrepo "github.com/esley2005/FE-EV-Rental-sub001/repository/ledger"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
	carsvc "github.com/esley2005/FE-EV-Rental-sub001/service/car"
	licensesvc "github.com/esley2005/FE-EV-Rental-sub001/service/license"
	ordersvc "github.com/esley2005/FE-EV-Rental-sub001/service/order"
	paymentsvc "github.com/esley2005/FE-EV-Rental-sub001/service/payment"
	risksvc "github.com/esley2005/FE-EV-Rental-sub001/service/risk"
	"github.com/esley2005/FE-EV-Rental-sub001/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// callback dedupe ledger lives in our own Postgres
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	store := orderstore.NewHTTP(cfg.StoreURL, cfg.StoreToken)
	ledger := ledgerrepo.New(db)

	// services
	lic := licensesvc.New(store, log)
	ps := paymentsvc.New(store, ledger, lic, log)
	osv := ordersvc.New(store)
	rs := risksvc.New(store)
	cs := carsvc.New(store)

	// controllers
	v := validator.New()
	paymentC := &paymentctrl.Controller{Svc: ps, Log: log}
	orderC := &orderctrl.Controller{Svc: osv, V: v, Log: log}
	riskC := &riskctrl.Controller{Svc: rs, Log: log}
	carC := &carctrl.Controller{Svc: cs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Payment: paymentC,
		Order:   orderC,
		Risk:    riskC,
		Car:     carC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
