package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/notekeeper/notekeeper/internal/handler/dto"
)

func newNotesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Inspect notes",
	}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.noteService().ListNotes(cmd.Context())
			if err != nil {
				return err
			}

			resp := dto.ToNoteListResponse(notes)
			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tIMPORTANT\tDATE\tCONTENT")
			for _, n := range resp {
				fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", n.ID, n.Important, n.Date, n.Content)
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	cmd.AddCommand(list)
	return cmd
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
