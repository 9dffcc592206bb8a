package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/stwalsh4118/faasdoc/internal/composer"
	"github.com/stwalsh4118/faasdoc/internal/document"
	apierrors "github.com/stwalsh4118/faasdoc/internal/errors"
	"github.com/stwalsh4118/faasdoc/internal/format"
	"github.com/stwalsh4118/faasdoc/internal/logger"
	"github.com/stwalsh4118/faasdoc/internal/models"
	"github.com/stwalsh4118/faasdoc/internal/services"
)

// errDiagnostics is returned by --strict when the payload raised warnings.
var errDiagnostics = errors.New("payload has data-quality warnings")

type composeOptions struct {
	variant      string
	input        string
	declaration  string
	format       string
	lguName      string
	locale       string
	currencyWord string
	logLevel     string
	strict       bool
}

func newComposeCmd() *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a FAAS or Tax Declaration document tree",
		Long: `Reads one FAAS payload (the records API JSON) and writes the composed
document tree to stdout. Data-quality warnings are logged to stderr.`,
		Example: `  faasdoc compose --variant faas --input record.json
  faasdoc compose --variant td --input record.json --declaration form.json --format yaml
  cat record.json | faasdoc compose --input -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompose(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.variant, "variant", "faas", "document variant: faas or td")
	flags.StringVarP(&opts.input, "input", "i", "", "FAAS payload JSON file, or - for stdin")
	flags.StringVar(&opts.declaration, "declaration", "", "tax declaration form JSON file (td only)")
	flags.StringVarP(&opts.format, "format", "f", "json", "output format: json or yaml")
	flags.StringVar(&opts.lguName, "lgu", "", "LGU name printed under the title")
	flags.StringVar(&opts.locale, "locale", "en-PH", "locale used for number grouping")
	flags.StringVar(&opts.currencyWord, "currency-word", "PESOS", "currency word used for amounts in words")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "stderr log level")
	flags.BoolVar(&opts.strict, "strict", false, "exit non-zero when the payload raises warnings")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCompose(cmd *cobra.Command, opts *composeOptions) error {
	variant, ok := document.ParseVariant(opts.variant)
	if !ok {
		return fmt.Errorf("unknown variant %q: use faas or td", opts.variant)
	}
	outFormat, err := document.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.declaration != "" && variant != document.VariantTaxDeclaration {
		return fmt.Errorf("--declaration only applies to the td variant")
	}

	var payload models.FaasPayload
	if err := readJSON(cmd.InOrStdin(), opts.input, &payload); err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	var decl models.TaxDeclaration
	if opts.declaration != "" {
		if err := readJSON(cmd.InOrStdin(), opts.declaration, &decl); err != nil {
			return fmt.Errorf("failed to read declaration: %w", err)
		}
		if err := validateDeclaration(decl); err != nil {
			return err
		}
	}

	log := logger.New("cli", logger.WithOutput(cmd.ErrOrStderr()), logger.WithLevel(opts.logLevel))
	formatter := format.New(format.Options{Locale: opts.locale, CurrencyWord: opts.currencyWord})
	service := services.NewDocumentService(nil, composer.New(formatter, composer.Options{LGUName: opts.lguName}),
		services.BatchLimits{MaxRecords: 1, Concurrency: 1}, log)

	var result *services.Result
	if variant == document.VariantTaxDeclaration {
		result, err = service.ComposeTaxDeclaration(cmd.Context(), &payload, decl)
	} else {
		result, err = service.ComposeFaas(cmd.Context(), &payload)
	}
	if err != nil {
		return err
	}

	if err := document.Encode(cmd.OutOrStdout(), result.Document, outFormat); err != nil {
		return err
	}

	if opts.strict && !result.Diagnostics.Empty() {
		return fmt.Errorf("%w: %d", errDiagnostics, len(result.Diagnostics.Warnings))
	}
	return nil
}

// readJSON decodes the file at path, or stdin when path is "-".
func readJSON(stdin io.Reader, path string, v interface{}) error {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return json.NewDecoder(r).Decode(v)
}

// validateDeclaration applies the same binding rules the HTTP API enforces.
func validateDeclaration(decl models.TaxDeclaration) error {
	v := validator.New()
	v.SetTagName("binding")
	apierrors.RegisterJSONFieldNames(v)

	err := v.Struct(decl)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate declaration: %w", err)
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("declaration.%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return errors.Join(errs...)
}
