package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gamiclient/internal/domain"
)

// set-field <name> <value>: numeric field types send the value as a JSON
// number when it parses as one.
func setFieldCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "set-field <name> <value>",
		Short: "Set a user-defined field value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldType, err := domain.ParseFieldType(typeName)
			if err != nil {
				return err
			}
			if err := resume(); err != nil {
				return err
			}

			env := appCtx.SetField(cmd.Context(), args[0], fieldValue(args[1], fieldType), fieldType)
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			for _, v := range env.Content {
				fmt.Println(v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "text", "field type: text, number, date, link, ...-list or a numeric tag")
	return cmd
}

func fieldValue(raw string, fieldType domain.FieldType) any {
	if fieldType == domain.FieldNumber {
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return json.Number(raw)
		}
	}
	return raw
}
