// Command pathtool inspects and converts freecam keyframe paths.
//
//	pathtool dump <file>
//	pathtool convert -in a.p5path -out a.yaml
//	pathtool sample -n 10 <file>
//	pathtool slots [-app name] list | save <name> <file> | load <name> <file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/pathstore"
	"gopkg.in/yaml.v3"
)

const defaultApp = "freecam_sandbox"

var errUsage = errors.New("usage: pathtool dump|convert|sample|slots ...")

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		log.Fatal(err)
	}
}

// run executes one subcommand. openSlots may be nil to use the user data
// directory through gdata.
func run(args []string, out io.Writer, openSlots func(app string) (*pathstore.Slots, error)) error {
	if len(args) == 0 {
		return errUsage
	}
	if openSlots == nil {
		openSlots = pathstore.OpenSlots
	}
	switch args[0] {
	case "dump":
		return dump(args[1:], out)
	case "convert":
		return convert(args[1:], out)
	case "sample":
		return sample(args[1:], out)
	case "slots":
		return slots(args[1:], out, openSlots)
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

func dump(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("dump <file>: %w", errUsage)
	}
	p, err := pathstore.LoadPath(args[0])
	if err != nil {
		return err
	}
	data, err := pathstore.MarshalPath(p)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func convert(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(out)
	in := fs.String("in", "", "source path file")
	dst := fs.String("out", "", "destination path file; extension picks the format")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *dst == "" {
		return fmt.Errorf("convert -in <file> -out <file>: %w", errUsage)
	}
	p, err := pathstore.LoadPath(*in)
	if err != nil {
		return err
	}
	if err := pathstore.SavePath(*dst, p); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d nodes to %s\n", len(p.Poses), *dst)
	return nil
}

type sampleRow struct {
	T    float32            `yaml:"t"`
	Pose pathstore.PoseSpec `yaml:"pose"`
}

// sample prints n poses at evenly spaced percents through the path.
func sample(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(out)
	n := fs.Int("n", 10, "number of samples")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *n < 1 {
		return fmt.Errorf("sample -n N <file>: %w", errUsage)
	}
	poses, err := pathstore.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	rows := make([]sampleRow, 0, *n)
	for i := 0; i < *n; i++ {
		var t float32
		if *n > 1 {
			t = float32(i) / float32(*n-1)
		}
		p, ok := freecam.Interpolate(poses, t)
		if !ok {
			return fmt.Errorf("sample %s: path is empty", fs.Arg(0))
		}
		rows = append(rows, sampleRow{T: t, Pose: pathstore.NewPoseSpec(p)})
	}
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	return enc.Encode(rows)
}

func slots(args []string, out io.Writer, open func(app string) (*pathstore.Slots, error)) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	fs.SetOutput(out)
	app := fs.String("app", defaultApp, "gdata application name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("slots list|save|load: %w", errUsage)
	}
	s, err := open(*app)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "list":
		names, err := s.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	case "save":
		if len(rest) != 3 {
			return fmt.Errorf("slots save <name> <file>: %w", errUsage)
		}
		poses, err := pathstore.LoadFile(rest[2])
		if err != nil {
			return err
		}
		if err := s.Save(rest[1], poses); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %d nodes to slot %s\n", len(poses), rest[1])
		return nil
	case "load":
		if len(rest) != 3 {
			return fmt.Errorf("slots load <name> <file>: %w", errUsage)
		}
		poses, err := s.Load(rest[1])
		if err != nil {
			return err
		}
		if err := pathstore.SaveFile(rest[2], poses); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d nodes to %s\n", len(poses), rest[2])
		return nil
	}
	return fmt.Errorf("unknown slots command %q: %w", rest[0], errUsage)
}
