// Command safestore-client is a cobra-based CLI for a safestore server: it
// lists, uploads, downloads, and verifies files, and keeps a LightTree of
// every file it has itself uploaded so it can verify a downloaded file's
// inclusion proof against its own retained root instead of trusting
// whatever root the server happens to report at download time.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tadovas/safestore/internal/apiclient"
	"github.com/tadovas/safestore/internal/config"
	"github.com/tadovas/safestore/merkle"
)

var cfg config.Client

func main() {
	root := &cobra.Command{
		Use:          "safestore-client",
		Short:        "Interact with a safestore server and verify its inclusion proofs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}
	root.PersistentFlags().StringVar(&cfg.APIBase, "api", config.DefaultAPIBase, "base URL of the safestore server")
	root.PersistentFlags().StringVar(&cfg.FrontierState, "frontier-state", config.DefaultFrontierState, "path to this client's local light-tree frontier")

	root.AddCommand(listCmd(), uploadCmd(), downloadCmd(), rootCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every file on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiclient.New(cfg.APIBase).List()
			if err != nil {
				return err
			}
			for _, f := range list.Files {
				fmt.Printf("%d\t%s\n", f.ID, f.Name)
			}
			return nil
		},
	}
}

func uploadCmd() *cobra.Command {
	var contentFlag string
	cmd := &cobra.Command{
		Use:   "upload <name>",
		Short: "Upload a file and record its digest in the local frontier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			content := []byte(contentFlag)

			file, err := apiclient.New(cfg.APIBase).Upload(name, content)
			if err != nil {
				return err
			}
			fmt.Printf("uploaded %s with id %d\n", file.Name, file.ID)

			frontier := loadFrontier()
			frontier.Append(merkle.Sum(content))
			return saveFrontier(frontier)
		},
	}
	cmd.Flags().StringVar(&contentFlag, "content", "", "file content to upload")
	return cmd
}

func downloadCmd() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download a file and verify its inclusion proof against this client's own retained root",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := apiclient.New(cfg.APIBase).Download(id)
			if err != nil {
				return err
			}
			fmt.Printf("file: %s with id: %d contains: [%s]\n", file.Name, file.ID, file.Content)

			frontier := loadFrontier()
			root, ok := frontier.Root()
			if !ok {
				return fmt.Errorf("no retained root for this client yet: upload at least one file before downloading")
			}
			fmt.Printf("retained root: %s\n", root.String())

			ok = merkle.Verify(root, merkle.Sum(file.Content), file.Proof)
			fmt.Printf("verified: %v\n", ok)
			if !ok {
				return fmt.Errorf("inclusion proof for file %d did not verify against the retained root", id)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "id of the file to download")
	return cmd
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the server's current commitment root",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootHash, err := apiclient.New(cfg.APIBase).Root()
			if err != nil {
				return err
			}
			fmt.Println(rootHash.Hash.String())
			return nil
		},
	}
}

// demoCmd reproduces the upload/list/fetch-root/download/verify walkthrough
// this project's teacher shipped as its own end-to-end example.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run an end-to-end upload/list/root/download/verify walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiclient.New(cfg.APIBase)

			list, err := client.List()
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", list)

			uploaded, err := client.Upload("file_1", []byte("some content"))
			if err != nil {
				return err
			}
			fmt.Printf("Uploaded %s with id %d\n", uploaded.Name, uploaded.ID)

			list, err = client.List()
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", list)

			rootHash, err := client.Root()
			if err != nil {
				return err
			}
			fmt.Println(rootHash.Hash.String())

			file, err := client.Download(uploaded.ID)
			if err != nil {
				return err
			}
			fmt.Printf("file: %s with id: %d contains: [%s]\n", file.Name, file.ID, file.Content)

			verified := merkle.Verify(rootHash.Hash, merkle.Sum(file.Content), file.Proof)
			fmt.Printf("Verified: %v\n", verified)
			return nil
		},
	}
}

func loadFrontier() *merkle.LightTree {
	t := merkle.NewLightTree()
	data, err := os.ReadFile(cfg.FrontierState)
	if err != nil {
		return t
	}
	if err := json.Unmarshal(data, t); err != nil {
		return merkle.NewLightTree()
	}
	return t
}

func saveFrontier(t *merkle.LightTree) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.FrontierState, data, 0644)
}
