// Command dmd downloads a minecraft-data dataset for a given platform
// and version. The serve command reads display names out of the
// downloaded directory via the -data flag.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "bedrock", "platform of the dataset")
		ver      = flag.String("version", "1.21.0", "version of the dataset")
		out      = flag.String("o", "./data", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *platform == "" {
		panic("platform required")
	}

	if *ver == "" {
		panic("version required")
	}

	path := fmt.Sprintf("%s/%s-%s", *out, *platform, *ver)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading dataset %s", path)

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/bedrock/1.21.0
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading dataset %s", path)
}
