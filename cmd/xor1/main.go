package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/xor1/cmd/internal"
	"github.com/saylorsolutions/xor1/pkg/keyspec"
	"github.com/saylorsolutions/xor1/pkg/xor"
	flag "github.com/spf13/pflag"
)

const keyEnvVar = "XOR1_KEY"

var (
	version = "dev"

	errUsage = errors.New("usage error")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	key     string
	limit   int
	force   bool
	quiet   bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		opts        options
		helpFlag    bool
		versionFlag bool
	)
	flags := flag.NewFlagSet("xor1", flag.ContinueOnError)
	// Parse errors are reported below, not by pflag.
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version and exits.")
	flags.StringVarP(&opts.key, "key", "k", "", "Key specification: an INT32 value, a 64 character hex string, or a path to a file with at least 32 bytes. Defaults to $"+keyEnvVar+".")
	flags.IntVarP(&opts.limit, "max", "n", 0, "Maximum number of decoded bytes to display with show. 0 displays everything.")
	flags.BoolVarP(&opts.force, "force", "f", false, "Overwrite OUTPUT if it already exists.")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress informational output.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Emit debug output.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `
xor1 screens files with a repeating 32 byte XOR key, and stores them in the XOR1 format that can be reversed with the same key.

USAGE:
    xor1 encode INPUT OUTPUT -k KEY
    xor1 decode INPUT OUTPUT -k KEY
    xor1 show INPUT -k KEY
    xor1 keygen OUTPUT

MODES:
    encode (or encrypt) reads INPUT and writes the XOR1 framed, screened data to OUTPUT.
    decode (or decrypt) reads an XOR1 framed INPUT and writes the original data to OUTPUT.
    show decodes INPUT in memory and prints a printable preview of the contents.
    keygen writes 32 securely generated random bytes to OUTPUT, for use as a key file.

KEY:
    The key specification is tried as each of these forms in order, the first that applies is used.
    1. An INT32 value (e.g. 12345), expanded to 32 bytes.
    2. A 32 byte hex string (64 hex characters).
    3. A path to a file, the first 32 bytes of which are the key.

FLAGS:
%s
EXIT CODES:
    %d on success, %d on a failed operation, %d on a usage error, %d when the key can't be resolved.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
XOR screening with a repeating key is easily reversed by anyone with a bit of known plain text.
`, flags.FlagUsages(), internal.ExitOK, internal.ExitFailure, internal.ExitUsage, internal.ExitBadKey)
	}

	log := internal.Logger{Out: stdout, Err: stderr}
	if len(args) == 0 {
		flags.Usage()
		return internal.ExitUsage
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		log.Errorf("Error parsing flags: %v", err)
		return internal.ExitUsage
	}
	if helpFlag {
		flags.Usage()
		return internal.ExitOK
	}
	if versionFlag {
		_, _ = fmt.Fprintf(stdout, "xor1 %s\n", version)
		return internal.ExitOK
	}
	log.Quiet = opts.quiet
	log.Verbose = opts.verbose

	if err := dispatch(log, opts, flags.Args()); err != nil {
		log.Errorf("%v", err)
		if errors.Is(err, errUsage) {
			return internal.ExitUsage
		}
		return internal.ExitCode(err)
	}
	return internal.ExitOK
}

func dispatch(log internal.Logger, opts options, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing MODE argument", errUsage)
	}
	if opts.limit < 0 {
		return fmt.Errorf("%w: --max must not be negative", errUsage)
	}
	mode, args := args[0], args[1:]
	log.Debugf("Running mode %q with arguments %v", mode, args)
	switch mode {
	case "encode", "encrypt":
		if len(args) != 2 {
			return fmt.Errorf("%w: encode requires INPUT and OUTPUT arguments", errUsage)
		}
		key, err := resolveKey(log, opts.key)
		if err != nil {
			return err
		}
		return encodeFile(log, key, args[0], args[1], opts.force)
	case "decode", "decrypt":
		if len(args) != 2 {
			return fmt.Errorf("%w: decode requires INPUT and OUTPUT arguments", errUsage)
		}
		key, err := resolveKey(log, opts.key)
		if err != nil {
			return err
		}
		return decodeFile(log, key, args[0], args[1], opts.force)
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("%w: show requires an INPUT argument", errUsage)
		}
		key, err := resolveKey(log, opts.key)
		if err != nil {
			return err
		}
		return showFile(log, key, args[0], opts.limit)
	case "keygen":
		if len(args) != 1 {
			return fmt.Errorf("%w: keygen requires an OUTPUT argument", errUsage)
		}
		return generateKeyFile(log, args[0], opts.force)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, mode)
	}
}

func resolveKey(log internal.Logger, spec string) (xor.Key, error) {
	if len(spec) == 0 {
		spec = os.Getenv(keyEnvVar)
		if len(spec) > 0 {
			log.Debugf("Using key specification from $%s", keyEnvVar)
		}
	}
	if len(spec) == 0 {
		return xor.Key{}, fmt.Errorf("%w: a key is required, set --key or $%s", errUsage, keyEnvVar)
	}
	key, form, err := keyspec.Resolve(spec)
	if err != nil {
		return xor.Key{}, err
	}
	switch form {
	case keyspec.FormInt32:
		log.Infof("Using INT32 key derivation: %s -> %d bytes", spec, len(key))
	case keyspec.FormHex:
		log.Infof("Using hex key: %d bytes", len(key))
	case keyspec.FormFile:
		log.Infof("Read key from file: %d bytes", len(key))
	}
	return key, nil
}
