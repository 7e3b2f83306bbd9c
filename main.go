package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/jumpei00/gostocksignal/app/server"
	"github.com/jumpei00/gostocksignal/config"
	"github.com/jumpei00/gostocksignal/log"
	"github.com/jumpei00/gostocksignal/stock"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// setup loads config.ini, sets logging and returns the configured price provider
func setup(cmd *cli.Command) (stock.Provider, error) {
	if err := config.InitConfig(cmd.String("config")); err != nil {
		return nil, err
	}
	log.SetLogging(config.Config.LogLevel)
	return stock.NewProvider(config.Config)
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	provider, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := models.InitDB(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return server.Run(ctx, provider)
}

func recommendAction(ctx context.Context, cmd *cli.Command) error {
	provider, err := setup(cmd)
	if err != nil {
		return err
	}

	symbol := cmd.String("symbol")
	end := cmd.Timestamp("end")
	start := end.AddDate(-1, 0, 0)
	if cmd.IsSet("start") {
		start = cmd.Timestamp("start")
	}
	if !start.Before(end) {
		return fmt.Errorf("start %s must be before end %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	logrus.Infof("recommend: symbol -> %s, %s ~ %s, provider -> %s",
		symbol, start.Format("2006-01-02"), end.Format("2006-01-02"), provider.Name())

	q, err := provider.GetStockData(ctx, symbol, start, end)
	if err != nil {
		return fmt.Errorf("stock get error, symbol: %s: %w", symbol, err)
	}
	cframe, err := models.NewCandleFrame(symbol, models.NewCandlesFromQuote(symbol, q))
	if err != nil {
		return err
	}
	table, err := models.Recommend(ctx, cframe)
	if err != nil {
		return err
	}

	fmt.Println(renderTable(symbol, table, cframe.Summarize()))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "gostocksignal",
		Usage: "MACD, Bollinger Bands and RSI trade recommendations from daily stock prices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config.ini",
				Value:   "config.ini",
			},
		},
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the JSON API",
				Action: serveAction,
			},
			{
				Name:  "recommend",
				Usage: "Print the recommendation table of a symbol",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Stock ticker symbol",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:  "start",
						Usage: "Start date in `YYYY-MM-DD` format. Defaults to one year before end.",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
					},
					&cli.TimestampFlag{
						Name:  "end",
						Usage: "End date in `YYYY-MM-DD` format. Defaults to today.",
						Value: time.Now(),
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
					},
				},
				Action: recommendAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatalln(err)
	}
}
