package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/grc-lab/riskreport/pkg/cli/config"
	"github.com/grc-lab/riskreport/pkg/usecase"
	"github.com/grc-lab/riskreport/pkg/utils/logging"
	"github.com/grc-lab/riskreport/pkg/utils/safe"
)

func cmdExport() *cli.Command {
	var reportID int64
	var output string
	var gcsBucket string
	var gcsObject string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "report-id",
			Usage:       "ID of the report to export",
			Required:    true,
			Destination: &reportID,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout if '-')",
			Value:       "-",
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Upload the document to this GCS bucket after writing",
			Sources:     cli.EnvVars("RISKREPORT_GCS_BUCKET"),
			Destination: &gcsBucket,
		},
		&cli.StringFlag{
			Name:        "gcs-object",
			Usage:       "Object name for the GCS upload (defaults to report-<id>.json)",
			Destination: &gcsObject,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Build an export document for a report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			doc, err := uc.Export.BuildExport(ctx, reportID)
			if err != nil {
				return goerr.Wrap(err, "failed to build export document", goerr.V("report_id", reportID))
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode export document")
			}
			data = append(data, '\n')

			if err := writeOutput(ctx, output, data); err != nil {
				return err
			}

			if gcsBucket != "" {
				object := gcsObject
				if object == "" {
					object = fmt.Sprintf("report-%d.json", reportID)
				}
				if err := uploadToGCS(ctx, gcsBucket, object, data); err != nil {
					return err
				}
				logging.Default().Info("Uploaded export document",
					"bucket", gcsBucket,
					"object", object,
				)
			}

			logging.Default().Info("Export document built",
				"report_id", reportID,
				"generation_id", doc.GenerationID,
			)
			return nil
		},
	}
}

func writeOutput(ctx context.Context, path string, data []byte) error {
	if path == "-" {
		safe.Write(ctx, os.Stdout, data)
		return nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	if _, err := f.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", path))
	}
	return nil
}

func uploadToGCS(ctx context.Context, bucket, object string, data []byte) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create GCS client")
	}
	defer safe.Close(ctx, client)

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write GCS object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize GCS object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	return nil
}
