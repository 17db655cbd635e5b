package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"filebase/internal/adapters/codec"
	"filebase/internal/adapters/infra"
	"filebase/internal/adapters/watch"
	"filebase/internal/core/application"
	"filebase/internal/core/domain"
)

var config *domain.RuntimeConfig

func init() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to the runtime configuration")
	pflag.Parse()

	var err error
	// load config
	config, err = domain.LoadConfigs(*configPath)
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	enc, err := codec.ForName(config.File.Codec)
	if err != nil {
		log.Fatal(err)
	}

	file := application.New[string](enc, watch.NewSource(), infra.NewUUIDGenerator())
	if err := file.Open(config.File.Path); err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	path, err := file.AbsolutePath()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Tracking %s\n", path)
	fmt.Printf("It is %v that this file has unsaved changes\n", file.HasUnsavedChanges())

	fmt.Println("Adding some data to the file")
	if err := file.SetData(config.File.InitialData); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Now it is %v that this file has unsaved changes\n", file.HasUnsavedChanges())

	fmt.Println("Saving file...")
	if err := file.Save(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Now it is %v that this file has unsaved changes\n", file.HasUnsavedChanges())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Feel free to rename, move or delete the file and see what happens (CTRL+C to exit)")

	for {
		select {
		case notice := <-file.Notifications():
			var deleted *domain.FileDeletedError
			if errors.As(notice.Err, &deleted) {
				color.Red("[%s] %v", notice.ID, notice.Err)
				color.Yellow("the next save will recreate it at the old path")
			} else {
				color.Yellow("[%s] watch trouble: %v", notice.ID, notice.Err)
			}
		case <-sigChan:
			fmt.Println("\nClosing file demo, goodbye!")
			return
		}
	}
}
