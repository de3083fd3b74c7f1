// normalize lee un libro .xlsx, ejecuta el pipeline de normalización y escribe
// el resultado en JSON, sin BD ni servidor.
//
// Uso: go run ./cmd/normalize [-stores "COMODIN,R998"] [-sheets] libro.xlsx
// Sale con código 2 si alguna fila fue rechazada.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
	"github.com/jhoicas/retail-ingest/internal/infrastructure/xlsx"
	"github.com/jhoicas/retail-ingest/pkg/logger"
)

func main() {
	stores := flag.String("stores", "", "tiendas excluidas separadas por comas; sin el flag se usa la lista por defecto, vacío no excluye nada")
	sheets := flag.Bool("sheets", false, "incluir en la salida el rol asignado a cada hoja")
	level := flag.String("log-level", "warn", "nivel de log")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: *level, Out: os.Stderr})

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: normalize [flags] libro.xlsx")
		os.Exit(1)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("abrir libro")
	}
	defer f.Close()

	wb, err := xlsx.NewReader().Read(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("leer libro")
	}
	for _, s := range wb.Sheets {
		log.Debug().Str("sheet", s.Name).Str("role", string(s.Role)).Int("rows", s.Rows).Msg("hoja")
	}

	var opts ingest.Options
	if flagSet("stores") {
		opts.ExcludedStores = splitList(*stores)
	}
	res := ingest.NewPipeline(opts).ValidateAndNormalize(wb.Dataset)

	var out any = res
	if *sheets {
		out = struct {
			Sheets []xlsx.SheetInfo `json:"sheets"`
			ingest.Result
		}{wb.Sheets, res}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("escribir resultado")
	}

	log.Info().
		Int("sales", len(res.Sales)).
		Int("products", len(res.Products)).
		Int("transfers", len(res.Transfers)).
		Int("errors", len(res.Errors)).
		Msg("normalización terminada")
	if len(res.Errors) > 0 {
		f.Close()
		os.Exit(2)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
