package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

const program = "product-demo"

func main() {
	log.SetFlags(0)

	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.SetOutput(log.Writer())

	var tagName string
	flags.StringVar(&tagName, "tag-name", "", "name of the tag to build")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if tagName == "" {
		log.Fatal("please provide a tag name")
	}

	if err := os.RemoveAll("./build"); err != nil {
		log.Fatalf("failed to delete build directory: %v", err)
	}
	if err := os.MkdirAll("./build", 0700); err != nil {
		log.Fatalf("failed to create build directory: %v", err)
	}

	targets := []target{
		{os: "linux", arch: "amd64"},
		{os: "linux", arch: "arm64"},
		{os: "darwin", arch: "arm64"},
		{os: "windows", arch: "amd64"},
	}

	for _, target := range targets {
		binary := "./" + program
		if target.os == "windows" {
			binary += ".exe"
		}

		cmd := exec.Command("go", "build", "-ldflags", "-X main.version="+tagName, "-o", binary, "./cmd/"+program)
		cmd.Env = append(os.Environ(), "CGO_ENABLED=0", "GOOS="+target.os, "GOARCH="+target.arch)
		target.run(cmd)

		archive := fmt.Sprintf("%s-%s-%s.tar.gz", program, target.os, target.arch)
		target.run(exec.Command("tar", "cfz", "./build/"+archive, binary))

		cmd = exec.Command("sha256sum", archive)
		cmd.Dir = "./build"
		checksum := target.run(cmd)

		checksumFile := fmt.Sprintf("./build/%s-%s-%s.sha256", program, target.os, target.arch)
		if err := os.WriteFile(checksumFile, checksum, 0600); err != nil {
			log.Fatalf("failed to write checksum file: %v", err)
		}

		if err := os.Remove(binary); err != nil {
			log.Fatalf("failed to delete binary: %v", err)
		}
	}
}

type target struct {
	os   string
	arch string
}

// run executes the command or exits the build, returning the command's output.
func (t target) run(cmd *exec.Cmd) []byte {
	log.Printf("%s-%s: %s", t.os, t.arch, strings.Join(cmd.Args, " "))

	out, err := cmd.Output()
	if err != nil {
		log.Fatalf("failed to run command: %v", err)
	}
	return out
}
