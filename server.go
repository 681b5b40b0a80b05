package disarium

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// IterFunc runs iters searches up to bound and returns how many numbers the
// last search found and the largest of them.
type IterFunc func(bound *uint256.Int, iters uint64) (count int, last uint256.Int)

// RunServer implements the line protocol used by the benchmark harness.
// Protocol (one command per line):
//   - INIT <bound>: set the search bound (must be called first).
//   - WARMUP <iters>: run iters iterations without reporting a result.
//   - RUN <iters>: run iters iterations and print OK <count> <last>.
//   - QUIT: exit.
//
// Malformed commands answer ERR BADARGS, RUN before INIT answers
// ERR NOTINIT and unknown commands answer ERR BADCMD. RunServer returns nil
// on QUIT or end of input.
func RunServer(r io.Reader, w io.Writer, doIters IterFunc) (err error) {
	defer Error.WrapP(&err)

	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	defer func() {
		if ferr := writer.Flush(); err == nil {
			err = ferr
		}
	}()

	var bound *uint256.Int

	reply := func(format string, args ...any) error {
		if _, err := fmt.Fprintf(writer, format+"\n", args...); err != nil {
			return err
		}
		return writer.Flush()
	}

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := strings.ToUpper(parts[0])
		switch cmd {
		case "INIT":
			if len(parts) != 2 {
				err = reply("ERR BADARGS")
				break
			}
			b, perr := uint256.FromDecimal(parts[1])
			if perr != nil {
				err = reply("ERR BADARGS")
				break
			}
			bound = b
			err = reply("OK")

		case "WARMUP", "RUN":
			if len(parts) != 2 {
				err = reply("ERR BADARGS")
				break
			}
			iters, perr := strconv.ParseUint(parts[1], 10, 64)
			if perr != nil {
				err = reply("ERR BADARGS")
				break
			}
			switch {
			case bound == nil && cmd == "WARMUP":
				err = reply("OK")
			case bound == nil:
				err = reply("ERR NOTINIT")
			case cmd == "WARMUP":
				_, _ = doIters(bound, iters)
				err = reply("OK")
			default:
				count, last := doIters(bound, iters)
				err = reply("OK %d %s", count, last.Dec())
			}

		case "QUIT":
			return nil

		default:
			err = reply("ERR BADCMD")
		}
		if err != nil {
			return err
		}
	}
}
