package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-r request timeout (e.g., "30s", "1m")
//	-remote base address of a running server for the terminal client
//	-storage storage backend: sqlite, file or memory
//	-d SQLite DSN
//	-f JSON state file of the file backend
//	-root workspace root confining explorer paths
//	-folder folder watched on startup
//	-preview document shown by the terminal client preview
//	-preferences-key storage key of the preference blob
//	-log-file terminal client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var remoteAddress string
	var backend string
	var databaseDSN string
	var stateFile string
	var workspaceRoot string
	var defaultFolder string
	var preview string
	var preferencesKey string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "r", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "remote", "", "Address of a running server")
	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite, file or memory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&stateFile, "f", "", "JSON state file")
	fs.StringVar(&workspaceRoot, "root", "", "Workspace root")
	fs.StringVar(&defaultFolder, "folder", "", "Folder watched on startup")
	fs.StringVar(&preview, "preview", "", "Document shown by the preview screen")
	fs.StringVar(&preferencesKey, "preferences-key", "", "Storage key of the preferences")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PreferencesKey: preferencesKey,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			Files:   Files{StateFile: stateFile},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: remoteAddress,
		},
		Workspace: Workspace{
			Root:          workspaceRoot,
			DefaultFolder: defaultFolder,
			Preview:       preview,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "docs-keeper"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
