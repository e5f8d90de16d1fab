package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Theathiestmonk/dronacharya-sub001/internal/api"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/config"
	"github.com/Theathiestmonk/dronacharya-sub001/internal/storage"
)

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a school question against the running server",
	Long: `Ask a school question against the running server.

Examples:
  dronacharya ask "When is the SA1 maths exam for grade 7?"
  dronacharya ask --grade 8 "show me Monday's timetable"
  dronacharya ask "who teaches science in grade 6"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		grade, _ := cmd.Flags().GetString("grade")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		req := api.AskRequest{Query: question}
		if grade != "" {
			req.Profile = map[string]string{"grade": grade}
		}

		resp, err := client.post(cmd.Context(), "/ask", req)
		if err != nil {
			return err
		}

		var result api.AskResponse
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Answer)
		return nil
	},
}

func init() {
	askCmd.Flags().String("grade", "", "fallback grade when the question names none")
}

// --- credential ---

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the spreadsheet-access credential",
}

// credentialFile is the JSON shape the external OAuth flow hands over.
type credentialFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
	UserEmail    string `json:"user_email"`
}

var credentialImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a credential produced by the OAuth flow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading credential file: %w", err)
		}
		var cf credentialFile
		if err := json.Unmarshal(data, &cf); err != nil {
			return fmt.Errorf("parsing credential file: %w", err)
		}
		if cf.AccessToken == "" {
			return fmt.Errorf("credential file has no access_token")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		cred := storage.Credential{
			ID:           uuid.New().String(),
			AccessToken:  cf.AccessToken,
			RefreshToken: cf.RefreshToken,
			ExpiresAt:    cf.ExpiresAt,
			UserEmail:    cf.UserEmail,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}
		if err := store.SaveCredential(cred); err != nil {
			return fmt.Errorf("saving credential: %w", err)
		}

		printSuccess("Imported credential for %s", cf.UserEmail)
		return nil
	},
}

var credentialShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		cred, err := store.ActiveCredential()
		if err != nil {
			printWarning("No active credential. Run `dronacharya credential import <file.json>`.")
			return nil
		}

		printStatus("Email", "%s", cred.UserEmail)
		printStatus("Expires", "%s", cred.ExpiresAt)
		printStatus("Imported", "%s", cred.CreatedAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	credentialCmd.AddCommand(credentialImportCmd)
	credentialCmd.AddCommand(credentialShowCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		keys := config.ShowAll(cfg)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", colorize(ansiBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
