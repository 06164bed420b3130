package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	pubchem "github.com/minh-dng/pubchem-go"
)

var propertyList string

func init() {
	propertiesCmd.Flags().StringVarP(&propertyList, "properties", "p", "Title,MolecularFormula", "comma separated property names")

	rootCmd.AddCommand(propertiesCmd, textCmd, synonymsCmd, cidsCmd, sidsCmd, aidsCmd, listPropertiesCmd)
}

// compound binds a command line identifier in the selected namespace.
func compound(arg string) (*pubchem.Compound, error) {
	id, err := pubchem.NewIdentifier(ns, arg)
	if err != nil {
		return nil, err
	}
	return client.Compound(id)
}

func cidArgs(args []string) ([]int, error) {
	cids := make([]int, len(args))
	for i, arg := range args {
		cid, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not a CID", arg)
		}
		cids[i] = cid
	}
	return cids, nil
}

var propertiesCmd = &cobra.Command{
	Use:   "properties <id>...",
	Short: "Prints a property table for one or more compounds.",
	Long: `Prints a property table. CIDs are looked up in a single request; other
identifiers are looked up one request each.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := pubchem.ParseProperties(propertyList)
		if err != nil {
			return err
		}
		tbl, err := fetchProperties(cmd.Context(), args, props)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), format, propertyResult(tbl, props))
	},
}

func fetchProperties(ctx context.Context, args []string, props []pubchem.CompoundProperty) (pubchem.PropertyTable, error) {
	if ns == pubchem.NamespaceCID {
		cids, err := cidArgs(args)
		if err != nil {
			return pubchem.PropertyTable{}, err
		}
		compounds, err := pubchem.NewCompounds(client, cids...)
		if err != nil {
			return pubchem.PropertyTable{}, err
		}
		if format == outputCSV {
			return compounds.PropertiesCSV(ctx, props...)
		}
		return compounds.Properties(ctx, props...)
	}

	var out pubchem.PropertyTable
	for _, arg := range args {
		cmpd, err := compound(arg)
		if err != nil {
			return out, err
		}
		t, err := cmpd.Properties(ctx, props...)
		if err != nil {
			return out, err
		}
		out.Properties = append(out.Properties, t.Properties...)
	}
	return out, nil
}

func propertyResult(t pubchem.PropertyTable, props []pubchem.CompoundProperty) result {
	res := result{header: table.Row{"CID"}}
	for _, p := range props {
		res.header = append(res.header, p.String())
	}

	records := make([]map[string]any, 0, t.Len())
	for _, rec := range t.Properties {
		row := table.Row{rec.CID}
		record := map[string]any{"CID": rec.CID}
		for _, p := range props {
			row = append(row, rec.Text(p))
			if v, ok := rec.Value(p); ok {
				record[p.String()] = v
			}
		}
		res.rows = append(res.rows, row)
		records = append(records, record)
	}
	res.value = records
	return res
}

var textCmd = &cobra.Command{
	Use:   "text <property> <id>",
	Short: "Prints a single property through the plain-text endpoint.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prop, err := pubchem.ParseProperty(args[0])
		if err != nil {
			return err
		}
		cmpd, err := compound(args[1])
		if err != nil {
			return err
		}
		value, err := cmpd.Text(cmd.Context(), prop)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), format, result{
			header: table.Row{"Property", "Value"},
			rows:   []table.Row{{prop.String(), value}},
			value:  map[string]string{prop.String(): value},
		})
	},
}

var synonymsCmd = &cobra.Command{
	Use:   "synonyms <id>...",
	Short: "Prints the synonyms of one or more compounds.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ns != pubchem.NamespaceCID || len(args) == 1 {
			if len(args) > 1 {
				return fmt.Errorf("only CIDs can be looked up together")
			}
			cmpd, err := compound(args[0])
			if err != nil {
				return err
			}
			synonyms, err := cmpd.Synonyms(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, listResult("Synonym", synonyms))
		}

		cids, err := cidArgs(args)
		if err != nil {
			return err
		}
		compounds, err := pubchem.NewCompounds(client, cids...)
		if err != nil {
			return err
		}
		lists, err := compounds.Synonyms(cmd.Context())
		if err != nil {
			return err
		}
		res := result{header: table.Row{"CID", "Synonym"}, value: lists}
		for _, l := range lists {
			for _, s := range l.Synonyms {
				res.rows = append(res.rows, table.Row{l.CID, s})
			}
		}
		return render(cmd.OutOrStdout(), format, res)
	},
}

// idListCmd builds the cids, sids and aids commands, which differ only in
// the accessor they call.
func idListCmd(use, short, column string, fetch func(*pubchem.Compound, context.Context) ([]int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmpd, err := compound(args[0])
			if err != nil {
				return err
			}
			ids, err := fetch(cmpd, cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, listResult(column, ids))
		},
	}
}

var (
	cidsCmd = idListCmd("cids", "Resolves an identifier to PubChem Compound IDs.", "CID", (*pubchem.Compound).CIDs)
	sidsCmd = idListCmd("sids", "Prints the Substance IDs deposited for a compound.", "SID", (*pubchem.Compound).SIDs)
	aidsCmd = idListCmd("aids", "Prints the BioAssay IDs a compound was tested in.", "AID", (*pubchem.Compound).AIDs)
)

var listPropertiesCmd = &cobra.Command{
	Use:   "list-properties",
	Short: "Prints every property name accepted by -p.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		props := pubchem.AllProperties()
		names := make([]string, len(props))
		for i, p := range props {
			names[i] = p.String()
		}
		return render(cmd.OutOrStdout(), format, listResult("Property", names))
	},
}
