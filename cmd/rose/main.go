package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/isaymatato/roseredis"
	"github.com/isaymatato/roseredis/internal/batchfile"
	"github.com/isaymatato/roseredis/modules/goredis"
)

const RoseVersion = "0.1.0"

var Out *log.Logger
var Err *log.Logger

func init() {
	Out = log.New(os.Stdout, "", 0)
	Err = log.New(os.Stderr, "", 0)
}

func main() {
	usage := `Rose batch runner.

Runs a YAML batch file as one Redis transaction and prints the merged result as JSON.

Usage:
    rose exec <batch_file> [--addr=<addr>] [--db=<db>] [--password=<password>]
        [--timeout=<timeout>] [--no-tx] [-v]
    rose check <batch_file>
    rose -h | --help
    rose --version

Options:
    -h --help                Show this screen.
    --version                Show version.
    --addr=<addr>            Redis address [default: localhost:6379].
    --db=<db>                Redis database [default: 0].
    --password=<password>    Redis password.
    --timeout=<timeout>      Batch timeout [default: 10s].
    --no-tx                  Pipeline without MULTI/EXEC.
    -v                       Log every batch to stderr.`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], RoseVersion)
	if err != nil {
		panic(err)
	}

	if verbose, _ := opts.Bool("-v"); verbose {
		flag.Set("logtostderr", "true")
		flag.Set("v", "1")
	}
	defer glog.Flush()

	if exec_, _ := opts.Bool("exec"); exec_ {
		execBatch(opts)
	} else if check_, _ := opts.Bool("check"); check_ {
		checkBatch(opts)
	}
}

func loadOps(opts docopt.Opts) []roseredis.Op {

	path, _ := opts.String("<batch_file>")
	f, err := batchfile.Load(path)
	if err != nil {
		Err.Fatalf("%s: %s", path, err)
	}

	ops, err := f.Ops()
	if err != nil {
		Err.Fatalf("%s: %s", path, err)
	}
	return ops
}

func checkBatch(opts docopt.Opts) {
	ops := loadOps(opts)
	for i, op := range ops {
		handler := ""
		if op.Handler != nil {
			handler = " => merge"
		}
		Out.Printf("%3d  %s%s", i, roseredis.CommandString(op.Command), handler)
	}
}

func execBatch(opts docopt.Opts) {
	ops := loadOps(opts)

	addr, _ := opts.String("--addr")
	db, err := opts.Int("--db")
	if err != nil {
		Err.Fatalf("--db: %s", err)
	}
	password, _ := opts.String("--password")
	timeoutStr, _ := opts.String("--timeout")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		Err.Fatalf("--timeout: %s", err)
	}
	noTx, _ := opts.Bool("--no-tx")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       db,
		Password: password,
	})
	defer rdb.Close()

	exec := goredis.New(rdb)
	exec.NoTx = noTx

	p := roseredis.NewPipeline(exec, glogLogger{})
	for _, op := range ops {
		p.Command(op)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := p.Exec(ctx)
	if err != nil {
		Err.Fatalf("%s", err)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		Err.Fatalf("%s", err)
	}
	Out.Print(string(out))
}

// glogLogger sends pipeline logs to glog. Batch progress is only shown at -v.
type glogLogger struct{}

func (glogLogger) LogMessage(msg string) {
	glog.V(1).Info(msg)
}

func (glogLogger) LogBatchStart(id ulid.ULID, cmds []any) {
	if glog.V(1) {
		for i, cmd := range cmds {
			glog.Infof("[%s] %3d %s", id, i, roseredis.CommandString(cmd))
		}
	}
}

func (glogLogger) LogBatchComplete(success bool, elapsed time.Duration, id ulid.ULID, n int) {
	glog.V(1).Infof("[%s] %d commands success=%t in %s", id, n, success, elapsed)
}

func (glogLogger) LogError(id ulid.ULID, err error) {
	glog.Errorf("[%s] %s", id, err)
}
