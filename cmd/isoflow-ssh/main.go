package main

import (
	"flag"
	"log"

	"isoflow/internal/app"
	"isoflow/internal/server"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	addr := flag.String("addr", ":2222", "SSH listen address")
	hostKey := flag.String("hostkey", "", "host key file (empty generates an ephemeral key)")
	tps := flag.Int("tps", 30, "frames per second pushed to each session")
	flag.Parse()

	srv := server.New(server.Options{
		Addr:    *addr,
		HostKey: *hostKey,
		TPS:     *tps,
		Seed:    flags.Seed,
		Noise:   flags.Noise,
		Config:  flags.Anim(),
	})
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
