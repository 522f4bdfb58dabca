// Package logfile writes arbitrary content to a file in a remote storage folder and
// reports the outcome as a Result rather than an error.
package logfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/gsuite-tools/sheets-records/log"
)

const (
	DefaultName     = "logFile"
	DefaultMimeType = "application/json"
)

var ErrInvalidMimeType = errors.New("invalid MIME type")

var subtype = regexp.MustCompile(`.+?/(.{3,})`)

// Store creates files and resolves folders in remote storage.
type Store interface {
	CreateFile(ctx context.Context, name string, content []byte, mimeType string) (File, error)
	FolderByID(ctx context.Context, id string) (Folder, error)
	RootFolder(ctx context.Context) (Folder, error)
}

type File interface {
	ID() string
	Name() string
	URL() string
	MoveTo(ctx context.Context, folder Folder) error
}

type Folder interface {
	ID() string
	Name() string
}

type Options struct {
	Name     string
	MimeType string
}

// Result is the outcome of Create. Only Success and Message are set for a failure.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FileName   string `json:"fileName,omitempty"`
	FileID     string `json:"fileId,omitempty"`
	FileURL    string `json:"fileUrl,omitempty"`
	MimeType   string `json:"fileMimeType,omitempty"`
	FolderName string `json:"destinationFolderName,omitempty"`
	FolderID   string `json:"destinationFolderId,omitempty"`
}

// CreateIn looks up the folder by ID (the root folder if the ID is blank) and then
// behaves like Create.
func CreateIn(ctx context.Context, store Store, content any, folderID string, options Options) Result {
	options = options.withDefaults()

	var folder Folder
	var err error

	if folderID == "" {
		folder, err = store.RootFolder(ctx)
	} else {
		folder, err = store.FolderByID(ctx, folderID)
	}

	if err != nil {
		return failed(options, folderID, err)
	}

	return Create(ctx, store, content, folder, options)
}

// Create serializes the content to a file '<name>.<MIME subtype>' and moves it to the
// folder (the root folder if nil). Errors are returned as an unsuccessful Result.
func Create(ctx context.Context, store Store, content any, folder Folder, options Options) (result Result) {
	options = options.withDefaults()
	folderID := ""

	defer func() {
		if r := recover(); r != nil {
			result = failed(options, folderID, fmt.Errorf("%v", r))
		}
	}()

	if folder != nil {
		folderID = folder.ID()
	}

	match := subtype.FindStringSubmatch(options.MimeType)
	if len(match) < 2 {
		return failed(options, folderID, fmt.Errorf("%w '%s'", ErrInvalidMimeType, options.MimeType))
	}

	filename := fmt.Sprintf("%s.%s", options.Name, match[1])

	if folder == nil {
		root, err := store.RootFolder(ctx)
		if err != nil {
			return failed(options, folderID, err)
		} else if root == nil {
			return failed(options, folderID, fmt.Errorf("no root folder"))
		}

		folder = root
		folderID = root.ID()
	}

	bytes, err := serialize(content)
	if err != nil {
		return failed(options, folderID, err)
	}

	file, err := store.CreateFile(ctx, filename, bytes, options.MimeType)
	if err != nil {
		return failed(options, folderID, err)
	} else if file == nil {
		return failed(options, folderID, fmt.Errorf("no file created"))
	}

	if err := file.MoveTo(ctx, folder); err != nil {
		return failed(options, folderID, err)
	}

	msg := fmt.Sprintf(`The file "%s" was created into the folder "%s" (ID: "%s") under the URL %s`,
		filename, folder.Name(), folderID, file.URL())

	log.Infof("%v", msg)

	return Result{
		Success:    true,
		Message:    msg,
		FileName:   filename,
		FileID:     file.ID(),
		FileURL:    file.URL(),
		MimeType:   options.MimeType,
		FolderName: folder.Name(),
		FolderID:   folderID,
	}
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}

	if o.MimeType == "" {
		o.MimeType = DefaultMimeType
	}

	return o
}

func serialize(content any) ([]byte, error) {
	switch v := content.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil
	}

	return json.MarshalIndent(content, "", "    ")
}

func failed(options Options, folderID string, err error) Result {
	msg := fmt.Sprintf(`Unable to create log file "%s" (MIME type "%s") in folder "%s" (%v)`,
		options.Name, options.MimeType, folderID, err)

	log.Errorf("%v", msg)

	return Result{
		Success: false,
		Message: msg,
	}
}
