// Command turb1600 hashes a message with the turb1600 sponge hash and
// prints the digest, or runs a built-in self-test when given no arguments.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/Turbulenss/Turb1600/turb1600"
)

var (
	rawOutput bool
	hexInput  string
	filePath  string
	tagValue  string
)

func init() {
	flag.BoolVar(&rawOutput, "raw", false, "emit raw digest bytes instead of hex")
	flag.StringVar(&hexInput, "hex", "", "decode this hex string and hash the resulting bytes")
	flag.StringVar(&filePath, "file", "", "hash the contents of this file")
	flag.StringVar(&tagValue, "tag", "", "hash utf8(tag) || 0x00 || utf8(string)")
}

// selfTestMessages are hashed and printed when the command is invoked with
// no message-selecting arguments.
var selfTestMessages = [][]byte{
	[]byte(""),
	[]byte("a"),
	[]byte("abc"),
	[]byte("turb1600"),
	[]byte("The quick brown fox jumps over the lazy dog"),
}

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	modes := 0
	if hexInput != "" {
		modes++
	}
	if filePath != "" {
		modes++
	}
	if tagValue != "" {
		modes++
	}
	// A bare positional string is its own mode only when --tag didn't
	// already claim that positional as its string argument.
	if tagValue == "" && flag.NArg() > 0 {
		modes++
	}

	if modes == 0 {
		runSelfTest()
		return
	}
	if modes > 1 {
		usageError("only one of a bare string, --hex, --file, or --tag may be given")
	}

	message, err := selectMessage()
	if err != nil {
		usageError(err.Error())
	}
	emit(turb1600.Hash(message))
}

// selectMessage resolves the single requested input mode into the bytes to
// hash.
func selectMessage() ([]byte, error) {
	switch {
	case hexInput != "":
		decoded, err := hex.DecodeString(hexInput)
		if err != nil {
			return nil, fmt.Errorf("invalid hex argument %q: %w", hexInput, err)
		}
		return decoded, nil

	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("could not read file %q: %w", filePath, err)
		}
		return data, nil

	case tagValue != "":
		if flag.NArg() == 0 {
			return nil, fmt.Errorf("--tag requires a string argument")
		}
		message := append([]byte(tagValue), 0x00)
		message = append(message, []byte(flag.Arg(0))...)
		return message, nil

	default:
		return []byte(flag.Arg(0)), nil
	}
}

// emit writes the digest to stdout in the requested format.
func emit(digest [turb1600.OutputBytes]byte) {
	if rawOutput {
		os.Stdout.Write(digest[:])
		return
	}
	fmt.Printf("%x\n", digest[:])
}

// runSelfTest hashes the fixed KAT message list and prints one
// repr(message) -> hex(digest) line per message.
func runSelfTest() {
	for _, m := range selfTestMessages {
		d := turb1600.Hash(m)
		fmt.Printf("%q -> %x\n", m, d[:])
	}
}

// usageError reports msg and exits with status 1.
func usageError(msg string) {
	glog.Errorf("turb1600: %s", msg)
	os.Exit(1)
}
