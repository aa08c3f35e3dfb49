// iconpack renders a source png into the platform icon containers: an ICO
// for Windows and an ICNS for macOS, with optional .syso and .iso outputs.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"git.sr.ht/~jackmordaunt/iconcodec"
	"git.sr.ht/~jackmordaunt/iconcodec/internal/util"
	"git.sr.ht/~jackmordaunt/iconcodec/syso"
)

type options struct {
	Output string `short:"o" long:"output" default:"." description:"Directory to place the generated files in"`
	Name   string `short:"n" long:"name" default:"icon" description:"Base name for the generated files"`
	Syso   bool   `long:"syso" description:"Also emit a Windows .syso resource object"`
	Arch   string `long:"arch" default:"amd64" description:"Architecture for the .syso resource (amd64, 386, arm, arm64)"`
	ISO    bool   `long:"iso" description:"Also bundle the generated files into an ISO disk image"`
	Args   struct {
		Icon string `positional-arg-name:"icon.png"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}
	set := iconcodec.IconSet{}
	if opts.Args.Icon != "" {
		by, err := os.ReadFile(opts.Args.Icon)
		if err != nil {
			return fmt.Errorf("reading icon: %w", err)
		}
		img, err := png.Decode(bytes.NewBuffer(by))
		if err != nil {
			return fmt.Errorf("decoding icon: %w", err)
		}
		set.Source = img
	}
	if err := set.Load("."); err != nil {
		return fmt.Errorf("loading icon set: %w", err)
	}
	if err := os.MkdirAll(opts.Output, 0777); err != nil {
		return fmt.Errorf("preparing %q: %w", opts.Output, err)
	}
	var (
		icoPath  = filepath.Join(opts.Output, opts.Name+".ico")
		icnsPath = filepath.Join(opts.Output, opts.Name+".icns")
		errs     util.MultiError
	)
	if err := emit(icoPath, set.ICO); err != nil {
		errs = append(errs, fmt.Errorf("ico: %w", err))
	}
	if err := emit(icnsPath, set.ICNS); err != nil {
		errs = append(errs, fmt.Errorf("icns: %w", err))
	}
	if opts.Syso && errs.IsEmpty() {
		out := filepath.Join(opts.Output, opts.Name+".syso")
		if err := syso.Embed(out, opts.Arch, icoPath); err != nil {
			errs = append(errs, fmt.Errorf("syso: %w", err))
		}
	}
	if opts.ISO && errs.IsEmpty() {
		if err := emitISO(opts, set); err != nil {
			errs = append(errs, fmt.Errorf("iso: %w", err))
		}
	}
	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

// emit writes the buffered container to a file without consuming it.
func emit(path string, src io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

func emitISO(opts options, set iconcodec.IconSet) error {
	// The copy buffers reset after a full read, so reading here does not
	// consume them.
	icoBytes, err := io.ReadAll(set.ICO)
	if err != nil {
		return fmt.Errorf("buffering ico: %w", err)
	}
	icnsBytes, err := io.ReadAll(set.ICNS)
	if err != nil {
		return fmt.Errorf("buffering icns: %w", err)
	}
	files := map[string][]byte{
		opts.Name + ".ico":  icoBytes,
		opts.Name + ".icns": icnsBytes,
	}
	out, err := os.OpenFile(
		filepath.Join(opts.Output, opts.Name+".iso"),
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer out.Close()
	if err := iconcodec.WriteImage(out, opts.Name, files); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}
