package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/client/preview"
	"github.com/dmitrijs2005/gophdrop/internal/client/session"
	"github.com/dmitrijs2005/gophdrop/internal/filex"
	"github.com/dmitrijs2005/gophdrop/internal/formatx"
)

// List refreshes the session and prints the file table.
func (a *App) List(ctx context.Context) error {
	err := a.session.Refresh(ctx)
	a.printFiles(a.session.State())
	return err
}

func (a *App) printFiles(st session.State) {
	a.printLastError(st)
	if st.ListStatus == session.ListError {
		return
	}
	if len(st.Files) == 0 {
		fmt.Fprintln(a.out, "No files uploaded yet.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tUPLOADED")
	for _, f := range st.Files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.OriginalName, formatx.FormatSize(f.Size), formatx.FormatDate(f.UploadDate))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d file(s)\n", len(st.Files))
}

func (a *App) printLastError(st session.State) {
	if st.LastError != "" {
		fmt.Fprintln(a.out, "Error:", st.LastError)
	}
}

// Upload reads a local file and sends it, rendering progress while it runs.
// The outcome is acknowledged once it has been shown.
func (a *App) Upload(ctx context.Context, path string) error {
	st := a.session.State()
	if st.Upload.Phase == session.UploadUploading {
		fmt.Fprintln(a.out, "An upload is already in progress.")
		return session.ErrUploadInProgress
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	name := filepath.Base(path)

	pr := &progressRenderer{w: a.out, tty: a.tty}
	unsubscribe := a.session.Subscribe(pr)
	err = a.session.Upload(ctx, data, name)
	unsubscribe()
	pr.finish()

	st = a.session.State()
	defer a.session.AcknowledgeUpload()

	switch {
	case errors.Is(err, session.ErrUnsupportedType):
		a.printLastError(st)
		return err
	case err != nil && st.Upload.Phase != session.UploadError:
		fmt.Fprintln(a.out, "Error:", err)
		return err
	case err != nil:
		a.printLastError(st)
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (%s)\n", name, formatx.FormatSize(int64(len(data))))
	a.printFiles(st)
	return nil
}

// Show loads one file and renders it according to its preview strategy.
func (a *App) Show(ctx context.Context, id string) error {
	d, err := a.session.LoadOne(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	f, t := d.File, d.Preview
	fmt.Fprintf(a.out, "%s\n  id: %s\n  size: %s\n  type: %s\n  uploaded: %s\n\n",
		f.OriginalName, f.ID, formatx.FormatSize(f.Size), f.MimeType, formatx.FormatDate(f.UploadDate))

	switch t.Strategy {
	case preview.PlainText, preview.StructuredText:
		if n := t.Notice(); n != "" {
			fmt.Fprintln(a.out, "Warning:", n)
		}
		fmt.Fprintln(a.out, t.Content)
	case preview.Image:
		fmt.Fprintln(a.out, "Image preview:", t.ViewURL)
	case preview.Document:
		fmt.Fprintln(a.out, "Document preview:", t.ViewURL)
	default:
		fmt.Fprintf(a.out, "Preview not available for .%s files.\n", t.Extension)
	}
	fmt.Fprintln(a.out, "Download:", t.DownloadURL)
	return nil
}

// Delete asks for confirmation and removes the file through the
// confirmation flow.
func (a *App) Delete(ctx context.Context, id string) error {
	st := a.session.State()
	if st.DeletingID != "" {
		fmt.Fprintln(a.out, "A delete is already in progress.")
		return session.ErrDeleteInProgress
	}

	f, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}

	a.confirm.Request(f)
	ok, err := GetConfirmation(a.reader, a.confirm.Message(), a.out)
	if err != nil || !ok {
		a.confirm.Cancel()
		fmt.Fprintln(a.out, "Cancelled.")
		return err
	}

	done, err := a.confirm.Confirm(ctx)
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		a.printLastError(a.session.State())
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", f.OriginalName)
	return nil
}

// Download saves a file into the configured download directory without
// overwriting existing files.
func (a *App) Download(ctx context.Context, id string) error {
	f, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	out, err := filex.CreateUnique(dir, f.OriginalName)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	n, err := a.session.Download(ctx, id, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(out.Name())
		a.log.Error(ctx, "download failed", "id", id, "error", err)
		fmt.Fprintln(a.out, "Error: Failed to download file. Please try again.")
		return err
	}

	fmt.Fprintf(a.out, "Saved %s (%s)\n", out.Name(), formatx.FormatSize(n))
	return nil
}

func (a *App) URL(id string) error {
	fmt.Fprintln(a.out, "View:    ", a.session.ViewURL(id))
	fmt.Fprintln(a.out, "Download:", a.session.DownloadURL(id))
	return nil
}

// Status prints the connectivity mode, the storage database health and the
// session state.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()
	fmt.Fprintf(a.out, "mode: %s\n", a.Mode())
	fmt.Fprintf(a.out, "database: %s\n", a.databaseHealth(ctx))
	fmt.Fprintf(a.out, "list: %s (%d files)\n", st.ListStatus, len(st.Files))
	fmt.Fprintf(a.out, "upload: %s", st.Upload.Phase)
	if st.Upload.Phase == session.UploadUploading {
		fmt.Fprintf(a.out, " %d%%", st.Upload.Progress)
	}
	fmt.Fprintln(a.out)
	if st.DeletingID != "" {
		fmt.Fprintf(a.out, "deleting: %s\n", st.DeletingID)
	}
	a.printLastError(st)
	return nil
}

func (a *App) databaseHealth(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.api.PingDatabase(ctx); err != nil {
		a.log.Warn(ctx, "database health check failed", "error", err)
		return "unavailable"
	}
	return "ok"
}

// lookup finds id in the session list, refreshing once if it is not there.
func (a *App) lookup(ctx context.Context, id string) (models.FileRecord, error) {
	if f, ok := models.FindByID(a.session.State().Files, id); ok {
		return f, nil
	}
	if err := a.session.Refresh(ctx); err != nil {
		a.printLastError(a.session.State())
		return models.FileRecord{}, err
	}
	if f, ok := models.FindByID(a.session.State().Files, id); ok {
		return f, nil
	}
	fmt.Fprintf(a.out, "Unknown file id %s\n", id)
	return models.FileRecord{}, errUnknownID
}

var errUnknownID = errors.New("unknown file id")
