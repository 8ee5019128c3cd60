package main

import (
	"encoding/json"
	"fmt"

	"github.com/dtalign/twinsim/internal/datasource"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <table>",
		Short: "Query the virtual tables integration",
		Long: `Retrieve rows from a virtual table on the external data platform.

The integration is a documented future extension point: the client is a
stub and every query reports that it is not implemented. The error is
surfaced deliberately so that scripted callers cannot mistake simulated
results for real observations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			limit, _ := cmd.Flags().GetInt("limit")

			client := datasource.NewVirtualTablesClient(nil)
			rows, err := client.Query(cmd.Context(), args[0], limit)
			if err != nil {
				// Never swallowed: the stub's error is the command's result.
				return err
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"rows": rows})
			}
			for _, row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 100, "Maximum number of rows to retrieve")
	return cmd
}
