// Command dbusvalidate is a small diagnostic CLI over the dbus
// validation core: it lets you check a type signature, a message
// body, or an identifier from the command line, without writing Go.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/heapq"
	"github.com/creachadair/mds/slice"
	"github.com/kr/pretty"

	"github.com/TeamBitBean/dbus"
	"github.com/TeamBitBean/dbus/fragments"
)

var globalArgs struct {
	Verbose bool `flag:"v,Print verbose diagnostics"`
}

var bodyArgs struct {
	Order     string `flag:"order,default=l,Byte order flag: 'l' (little-endian) or 'B' (big-endian)"`
	Remaining bool   `flag:"remaining,Report leftover bytes instead of rejecting them"`
}

func main() {
	root := &command.C{
		Name:     "dbusvalidate",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "signature",
				Usage: "signature <sig>",
				Help:  "Validate a DBus type signature and print the Validity code.",
				Run:   command.Adapt(runSignature),
			},
			{
				Name:     "body",
				Usage:    "body <sig> <hex-bytes>",
				Help:     "Validate a hex-encoded message body against a type signature.",
				SetFlags: command.Flags(flax.MustBind, &bodyArgs),
				Run:      runBody,
			},
			{
				Name:  "name",
				Usage: "name <path|interface|member|error|bus> <value>",
				Help:  "Validate a DBus identifier of the given kind.",
				Run:   runName,
			},
			{
				Name:  "codes",
				Usage: "codes [substring]",
				Help:  "List the closed set of Validity codes, optionally filtered by substring.",
				Run:   runCodes,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	env := root.NewEnv(nil)
	command.RunOrFail(env, os.Args[1:])
}

func runSignature(env *command.Env, sig string) error {
	v := dbus.ValidateSignatureWithReason([]byte(sig))
	fmt.Println(v)
	if globalArgs.Verbose {
		fmt.Printf("%# v\n", pretty.Formatter(sig))
	}
	if v != dbus.Valid {
		return fmt.Errorf("invalid signature: %s", v)
	}
	return nil
}

func runBody(env *command.Env) error {
	args := env.Args
	if len(args) != 2 {
		return fmt.Errorf("usage: body <sig> <hex-bytes>")
	}
	sig, hexBody := args[0], args[1]

	if dbus.ValidateSignatureWithReason([]byte(sig)) != dbus.Valid {
		return fmt.Errorf("signature %q does not pass signature validation", sig)
	}

	body, err := hex.DecodeString(strings.ReplaceAll(hexBody, " ", ""))
	if err != nil {
		return fmt.Errorf("decoding hex body: %w", err)
	}

	var orderFlag byte = 'l'
	if bodyArgs.Order != "" {
		orderFlag = bodyArgs.Order[0]
	}
	order, v := dbus.ValidateByteOrderFlag(orderFlag)
	if v != dbus.Valid {
		return fmt.Errorf("bad byte order flag %q: %s", bodyArgs.Order, v)
	}

	var remaining *int
	if bodyArgs.Remaining {
		remaining = new(int)
	}

	v = dbus.ValidateBodyWithReason([]byte(sig), order, remaining, body)
	fmt.Println(v)
	if globalArgs.Verbose {
		fmt.Printf("%# v\n", pretty.Formatter(struct {
			Sig   string
			Order fragments.ByteOrder
			Bytes []byte
		}{sig, order, body}))
	}
	if remaining != nil && v == dbus.Valid {
		fmt.Printf("bytes remaining: %d\n", *remaining)
	}
	if v != dbus.Valid {
		return fmt.Errorf("invalid body: %s", v)
	}
	return nil
}

func runName(env *command.Env) error {
	args := env.Args
	if len(args) != 2 {
		return fmt.Errorf("usage: name <path|interface|member|error|bus> <value>")
	}
	kind, value := args[0], args[1]
	b := []byte(value)
	var ok bool
	switch kind {
	case "path":
		ok = dbus.ValidatePath(b)
	case "interface":
		ok = dbus.ValidateInterface(b)
	case "member":
		ok = dbus.ValidateMember(b)
	case "error":
		ok = dbus.ValidateErrorName(b)
	case "bus":
		ok = dbus.ValidateBusName(b)
	default:
		return fmt.Errorf("unknown identifier kind %q, want path|interface|member|error|bus", kind)
	}
	if ok {
		fmt.Println("valid")
		return nil
	}
	fmt.Println("invalid")
	return fmt.Errorf("invalid %s name: %q", kind, value)
}

func runCodes(env *command.Env) error {
	var filter string
	if len(env.Args) > 0 {
		filter = env.Args[0]
	}

	codes := dbus.AllValidityCodes
	if filter != "" {
		codes = slices.Collect(slice.Select(codes, func(v dbus.Validity) bool {
			return strings.Contains(v.String(), filter)
		}))
	}

	// Order codes alphabetically by name for display.
	pq := heapq.New(func(a, b dbus.Validity) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, c := range codes {
		pq.Add(c)
	}
	for !pq.IsEmpty() {
		c, _ := pq.Pop()
		fmt.Printf("%3d  %s\n", int(c), c)
	}
	return nil
}
