package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CarlosATO/cierre-telefonica/internal/config"
	"github.com/CarlosATO/cierre-telefonica/internal/server"
	"github.com/CarlosATO/cierre-telefonica/internal/util"
)

var (
	port    = flag.Int("port", 0, "puerto del servidor (config.toml tiene prioridad si lo declara)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	maestro = flag.String("maestro", "", "ruta del libro maestro (pisa la configuración)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Cierre Telefónica - Control de Inventarios FON + FOT")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("No se pudo cargar la configuración, se usan valores por defecto: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// los flags pisan la configuración
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *maestro != "" {
		cfg.Data.MasterFile = *maestro
	}

	fmt.Printf("Maestro: %s (hoja %s)\n", cfg.Data.MasterFile, cfg.Data.MasterSheet)

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Servidor escuchando en el puerto %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("No se pudo arrancar el servidor: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Abriendo navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No se pudo abrir el navegador, visite manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: visite %s\n", url)
	}

	fmt.Println("\nCtrl+C para detener el servicio...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nServicio detenido.")
}
