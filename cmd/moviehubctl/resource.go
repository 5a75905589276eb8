package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yong/moviehub/pkg/client"
	"github.com/yong/moviehub/pkg/entitystore"
)

const defaultSort = "id,asc"

var errStoreClosed = errors.New("store closed before the change was confirmed")

type resourceSpec[T client.Record[T]] struct {
	name     string
	short    string
	resource func(*client.Client) *client.Resource[T]

	// attachable adds the attach subcommand.
	attachable bool
}

type listOutput[T any] struct {
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// session is the state of a single command run.
type session[T any] struct {
	actions *entitystore.Actions[T]
	out     io.Writer
}

func newResourceCmd[T client.Record[T]](opts *globalOptions, spec resourceSpec[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.name,
		Short: spec.short,
	}

	// run wraps a subcommand body with a fresh store and the command timeout.
	var run runFunc[T] = func(body sessionFunc[T]) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			store := entitystore.New[T](entitystore.WithLogger(opts.logger))
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			return body(ctx, &session[T]{
				actions: entitystore.NewActions(store, spec.resource(c), opts.logger),
				out:     cmd.OutOrStdout(),
			}, cmd, args)
		}
	}

	cmd.AddCommand(
		newListCmd[T](spec.name, run),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one record",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, s *session[T], _ *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				if _, err = s.actions.FetchOne(ctx, id).Wait(ctx); err != nil {
					return fmt.Errorf("failed to get %s %d: %w", spec.name, id, err)
				}

				return printJSON(s.out, s.actions.Store().State().Entity)
			}),
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete one record",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, s *session[T], _ *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				notifications, unsubscribe := s.actions.Store().Subscribe()
				defer unsubscribe()

				if _, err = awaitMutation(ctx, s.actions.Delete(ctx, id), notifications); err != nil {
					return fmt.Errorf("failed to delete %s %d: %w", spec.name, id, err)
				}

				_, err = fmt.Fprintf(s.out, "deleted %s %d\n", spec.name, id)
				return err
			}),
		},
		newSaveCmd[T]("create", "Create a record", run, func(ctx context.Context, a *entitystore.Actions[T], record T) *entitystore.Task[T] {
			return a.Create(ctx, record)
		}),
		newSaveCmd[T]("update", "Replace a record; the body must carry the id", run, func(ctx context.Context, a *entitystore.Actions[T], record T) *entitystore.Task[T] {
			return a.Update(ctx, record)
		}),
		newSaveCmd[T]("patch", "Change the fields present in the body; the body must carry the id", run, func(ctx context.Context, a *entitystore.Actions[T], record T) *entitystore.Task[T] {
			return a.PartialUpdate(ctx, record)
		}),
	)

	if spec.attachable {
		cmd.AddCommand(newAttachCmd[T](run))
	}

	return cmd
}

type sessionFunc[T any] func(ctx context.Context, s *session[T], cmd *cobra.Command, args []string) error

type runFunc[T any] func(body sessionFunc[T]) func(*cobra.Command, []string) error

func newListCmd[T client.Record[T]](name string, run runFunc[T]) *cobra.Command {
	var (
		page int
		size int
		sort []string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + name,
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, s *session[T], cmd *cobra.Command, _ []string) error {
			params := client.ListParams{Page: page, Size: size, Sort: sort}
			paged := all || cmd.Flags().Changed("page") || cmd.Flags().Changed("size")
			if paged && len(params.Sort) == 0 {
				params.Sort = []string{defaultSort}
			}

			for {
				result, err := s.actions.FetchList(ctx, params).Wait(ctx)
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", name, err)
				}

				next, ok := result.Links.Next()
				if !all || !ok || next <= params.Page {
					break
				}
				params.Page = next
			}

			state := s.actions.Store().State()
			return printJSON(s.out, listOutput[T]{TotalItems: state.TotalItems, Items: state.Entities})
		}),
	}

	cmd.Flags().IntVar(&page, "page", 0, "Zero-based page index")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")
	cmd.Flags().StringArrayVar(&sort, "sort", nil, "Sort criteria field,asc|desc; repeatable")
	cmd.Flags().BoolVar(&all, "all", false, "Keep loading pages until the last one")

	return cmd
}

func newSaveCmd[T client.Record[T]](
	use, short string,
	run runFunc[T],
	action func(context.Context, *entitystore.Actions[T], T) *entitystore.Task[T],
) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, s *session[T], cmd *cobra.Command, _ []string) error {
			record, err := readRecord[T](cmd.InOrStdin(), data)
			if err != nil {
				return err
			}

			notifications, unsubscribe := s.actions.Store().Subscribe()
			defer unsubscribe()

			n, err := awaitMutation(ctx, action(ctx, s.actions, record), notifications)
			if err != nil {
				return fmt.Errorf("failed to %s record: %w", use, err)
			}

			return printJSON(s.out, n.Entity)
		}),
	}

	cmd.Flags().StringVar(&data, "data", "", `Record as JSON, or "-" to read it from stdin`)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newAttachCmd[T client.Record[T]](run runFunc[T]) *cobra.Command {
	var (
		field       string
		file        string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "attach ID",
		Short: "Upload a file into a binary field",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, s *session[T], _ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			if contentType == "" {
				contentType = detectContentType(file, data)
			}

			if _, err = s.actions.FetchOne(ctx, id).Wait(ctx); err != nil {
				return fmt.Errorf("failed to get record %d: %w", id, err)
			}

			state := s.actions.SetAttachment(field, data, contentType)

			notifications, unsubscribe := s.actions.Store().Subscribe()
			defer unsubscribe()

			n, err := awaitMutation(ctx, s.actions.PartialUpdate(ctx, state.Entity), notifications)
			if err != nil {
				return fmt.Errorf("failed to attach %s: %w", field, err)
			}

			return printJSON(s.out, n.Entity)
		}),
	}

	cmd.Flags().StringVar(&field, "field", client.FieldImage, "Binary field to set")
	cmd.Flags().StringVar(&file, "file", "", "File to upload")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content type of the file; detected when empty")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// awaitMutation waits for task and then for the store notification carrying
// its request id.
func awaitMutation[T, R any](
	ctx context.Context,
	task *entitystore.Task[R],
	notifications <-chan entitystore.Notification[T],
) (entitystore.Notification[T], error) {
	if _, err := task.Wait(ctx); err != nil {
		return entitystore.Notification[T]{}, err
	}

	for {
		select {
		case n, ok := <-notifications:
			if !ok {
				return entitystore.Notification[T]{}, errStoreClosed
			}
			if n.RequestID == task.RequestID() {
				return n, nil
			}
		case <-ctx.Done():
			return entitystore.Notification[T]{}, ctx.Err()
		}
	}
}

func readRecord[T any](stdin io.Reader, data string) (T, error) {
	var record T

	raw := []byte(data)
	if data == "-" {
		var err error
		if raw, err = io.ReadAll(stdin); err != nil {
			return record, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	if err := json.Unmarshal(raw, &record); err != nil {
		return record, fmt.Errorf("invalid record: %w", err)
	}

	return record, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}

	return id, nil
}

func detectContentType(path string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}

	return http.DetectContentType(data)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
