// fib drives a Fibonacci generator one value at a time and prints what it
// yields. The backend carrying the suspend/resume handoff is selectable so
// both can be exercised against the same producer.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	generator "github.com/asukaminato0721/c-yield"
	"github.com/asukaminato0721/c-yield/internal/genlog"
)

func fibProducer(g *generator.Generator[int64]) {
	count := g.Data().(int)
	a, b := int64(1), int64(1)
	for i := 0; i < count; i++ {
		if !g.Yield(a) {
			return
		}
		a, b = b, a+b
		if a < 0 || b < 0 {
			genlog.Logger().Warn("fibonacci overflow, stopping early",
				zap.Int("emitted", i+1))
			return
		}
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "fib"
	app.Usage = "print Fibonacci numbers from a resumable generator"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "count, n",
			Value: 10,
			Usage: "how many numbers to generate",
		},
		cli.StringFlag{
			Name:  "backend, b",
			Value: "switch",
			Usage: "handoff backend: switch or worker",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log generator lifecycle transitions",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		genlog.SetLogger(l)
		defer l.Sync()
	}
	log := genlog.Logger()

	var opts []generator.Option
	switch backend := c.String("backend"); backend {
	case "switch":
	case "worker":
		opts = append(opts, generator.WithThreadWorker())
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	g, err := generator.New(fibProducer, c.Int("count"), opts...)
	if err != nil {
		return err
	}
	defer g.Destroy()
	log.Info("generator created",
		zap.String("backend", c.String("backend")),
		zap.Int("count", c.Int("count")))

	for i := 0; ; i++ {
		v, finished := g.Next()
		if finished {
			log.Info("generator finished", zap.Int("emitted", i))
			return nil
		}
		fmt.Printf("fib[%d] = %d\n", i, v)
	}
}
