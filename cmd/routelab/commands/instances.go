package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paingkl/routelab/builder"
)

type instanceInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Vertices    int     `json:"vertices"`
	Arcs        int     `json:"arcs"`
	Start       string  `json:"start"`
	Goal        string  `json:"goal"`
	Budget      float64 `json:"budget"`
}

func newInstancesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "instances",
		Short: "List the built-in road networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []instanceInfo
			for _, name := range builder.Names() {
				inst, err := builder.Named(name)
				if err != nil {
					return err
				}
				infos = append(infos, instanceInfo{
					Name:        inst.Name,
					Description: inst.Description,
					Vertices:    inst.Graph.VertexCount(),
					Arcs:        inst.Graph.EdgeCount(),
					Start:       inst.Start,
					Goal:        inst.Goal,
					Budget:      inst.Budget,
				})
			}

			out := cmd.OutOrStdout()
			if flags.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERTICES\tARCS\tSTART\tGOAL\tBUDGET\tDESCRIPTION")
			for _, in := range infos {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
					in.Name, in.Vertices, in.Arcs, in.Start, in.Goal, formatNumber(in.Budget), in.Description)
			}
			return w.Flush()
		},
	}
}
