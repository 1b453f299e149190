package main

import (
	"code.cloudfoundry.org/bytefmt"
	"flag"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/greut/imgurl/imgurl"
	"log"
	"net/http"
)

func main() {
	// Configuration
	var configFile = flag.String("config", "config.toml", "Define the configuration file to use.")
	flag.Parse()

	if flag.NArg() > 0 {
		*configFile = flag.Arg(0)
	}

	var config imgurl.Config
	log.Println(fmt.Sprintf("Reading configuration from %s", *configFile))
	if _, err := toml.DecodeFile(*configFile, &config); err != nil {
		fmt.Println(err)
		return
	}

	uS, _ := bytefmt.ToBytes(config.Cache.URLs)
	config.Cache.URLsSize = int64(uS)

	// build router with the config and URL cache middlewares.
	handler := imgurl.SetGroupCache(
		imgurl.WithConfig(imgurl.MakeRouter(), &config),
		&config,
		fmt.Sprintf("http://%s/", config.Host), // TODO add any other servers here...
	)

	// Serving
	listen := fmt.Sprintf("%v:%v", config.Host, config.Port)

	log.Println(fmt.Sprintf("Server running on %v", listen))
	panic(http.ListenAndServe(listen, handler))
}
