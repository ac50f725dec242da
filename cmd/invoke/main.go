// Command invoke calls the function once with an event read from a file or
// stdin and prints the response, like "sam local invoke".
package main

import (
	"context"
	"os"
	"strings"

	"lambda-workshop/internal/config"
	"lambda-workshop/internal/handlers"
	"lambda-workshop/internal/invoke"
	"lambda-workshop/pkg/server"

	"github.com/alexflint/go-arg"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type args struct {
	Variant string `arg:"-v,--variant" help:"console | cli | cdk | sam (default: HANDLER_VARIANT)"`
	Event   string `arg:"-e,--event" help:"event file, .json or .yaml; - or empty reads stdin"`
	Pretty  *bool  `arg:"-p,--pretty" help:"indent the response (default: when stdout is a terminal)"`
}

func (args) Description() string {
	return "\ninvoke the workshop function once with a local event\n"
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if a.Variant != "" {
		cfg.Variant = strings.ToLower(a.Variant)
	}
	if _, err := handlers.LookupVariant(cfg.Variant); err != nil {
		logrus.Fatalf("%v (choose one of %s)", err, strings.Join(handlers.VariantNames(), ", "))
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}
	// Keep stdout for the response document
	container.Logger.SetOutput(os.Stderr)

	doc, err := invoke.LoadEvent(a.Event, os.Stdin)
	if err != nil {
		container.Logger.Fatal(err)
	}

	resp, err := invoke.Invoke(context.Background(), container.Handler, doc)
	if err != nil {
		container.Logger.Fatal(err)
	}

	pretty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if a.Pretty != nil {
		pretty = *a.Pretty
	}
	if err := invoke.WriteResponse(os.Stdout, resp, pretty); err != nil {
		container.Logger.Fatal(err)
	}
}
