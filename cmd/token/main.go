// Command token emite un Bearer token para clientes de la API cuando JWT_SECRET está activo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/fulfillment-api/pkg/config"
	"github.com/jhoicas/fulfillment-api/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "", "cliente que usará el token (obligatorio)")
	minutes := flag.Int("minutes", 60, "vigencia en minutos")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "uso: token -subject <cliente> [-minutes 60]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *subject, jwt.ScopeFulfillment, cfg.JWT.Issuer, *minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
