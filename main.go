// Command darkstar obfuscates and encrypts BIP-39-style mnemonics
// under a password, and reverses the process given the matching
// reverse key.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: darkstar [-v1|-v2|-v3] <encrypt|decrypt|test> ...")
	fmt.Fprintln(os.Stderr, "  encrypt <mnemonic> <password>")
	fmt.Fprintln(os.Stderr, "  decrypt <data> <reverseKey> <password>")
	fmt.Fprintln(os.Stderr, "  test")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("darkstar", flag.ContinueOnError)
	useV1 := fs.Bool("v1", false, "use the V1 bare-envelope AES-CBC wire format")
	useV2 := fs.Bool("v2", false, "use the V2 AES-CBC wire format")
	useV3 := fs.Bool("v3", false, "use the V3 AES-GCM wire format (default)")
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage()
		return 2
	}

	v := V3
	switch {
	case *useV1:
		v = V1
	case *useV2:
		v = V2
	case *useV3:
		v = V3
	}

	switch command := rest[0]; command {
	case "encrypt":
		return runEncrypt(rest[1:], v)
	case "decrypt":
		return runDecrypt(rest[1:])
	case "test":
		return runSelfTest()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		return 2
	}
}

func runEncrypt(args []string, v Version) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: [flags] encrypt <mnemonic> <password>")
		return 1
	}
	res, err := Encrypt(args[0], args[1], v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encrypt failed: %v\n", err)
		return 1
	}
	out, err := json.Marshal(res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func runDecrypt(args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: decrypt <data> <reverseKey> <password>")
		return 1
	}
	mnemonic, err := Decrypt(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "decrypt failed: %v\n", err)
		return 1
	}
	fmt.Println(mnemonic)
	return 0
}
