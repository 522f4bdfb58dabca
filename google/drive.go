package google

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/gsuite-tools/sheets-records/log"
	"github.com/gsuite-tools/sheets-records/logfile"
)

const FolderMimeType = "application/vnd.google-apps.folder"

const fileFields = "id, name, mimeType, parents, webViewLink"

var ErrNotAFolder = errors.New("not a folder")

// Drive implements logfile.Store for Google Drive.
type Drive struct {
	service *drive.Service
}

type File struct {
	service *drive.Service
	file    *drive.File
}

type Folder struct {
	id   string
	name string
}

func NewDrive(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Drive, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Drive{
		service: service,
	}, nil
}

// CreateFile uploads the content as a new file in the user's root folder.
func (d *Drive) CreateFile(ctx context.Context, name string, content []byte, mimeType string) (logfile.File, error) {
	metadata := drive.File{
		Name:     name,
		MimeType: mimeType,
	}

	file, err := d.service.Files.Create(&metadata).
		Media(bytes.NewReader(content), googleapi.ContentType(mimeType)).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error creating file '%s' (%w)", name, err)
	}

	log.Debugf("Created Drive file %s (%s)", file.Name, file.Id)

	return &File{
		service: d.service,
		file:    file,
	}, nil
}

// FolderByID returns the Drive folder with the ID. The ID 'root' is the user's root
// folder.
func (d *Drive) FolderByID(ctx context.Context, id string) (logfile.Folder, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing folder ID")
	}

	file, err := d.service.Files.Get(id).
		Fields("id, name, mimeType").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve folder '%s' (%w)", id, err)
	}

	if file.MimeType != FolderMimeType {
		return nil, fmt.Errorf("%s: %w (%s)", id, ErrNotAFolder, file.MimeType)
	}

	return &Folder{
		id:   file.Id,
		name: file.Name,
	}, nil
}

func (d *Drive) RootFolder(ctx context.Context) (logfile.Folder, error) {
	return d.FolderByID(ctx, "root")
}

func (f *File) ID() string {
	return f.file.Id
}

func (f *File) Name() string {
	return f.file.Name
}

func (f *File) URL() string {
	return f.file.WebViewLink
}

// MoveTo replaces the file's parent folders with 'folder'.
func (f *File) MoveTo(ctx context.Context, folder logfile.Folder) error {
	if folder == nil {
		return fmt.Errorf("missing destination folder")
	}

	add := true
	remove := []string{}
	for _, parent := range f.file.Parents {
		if parent == folder.ID() {
			add = false
		} else {
			remove = append(remove, parent)
		}
	}

	if !add && len(remove) == 0 {
		return nil
	}

	call := f.service.Files.Update(f.file.Id, &drive.File{}).
		Fields(fileFields).
		Context(ctx)

	if add {
		call = call.AddParents(folder.ID())
	}

	if len(remove) > 0 {
		call = call.RemoveParents(strings.Join(remove, ","))
	}

	file, err := call.Do()
	if err != nil {
		return fmt.Errorf("error moving file '%s' to folder '%s' (%w)", f.file.Name, folder.ID(), err)
	}

	f.file = file

	return nil
}

func (f *Folder) ID() string {
	return f.id
}

func (f *Folder) Name() string {
	return f.name
}
