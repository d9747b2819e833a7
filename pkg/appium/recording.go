package appium

import (
	"context"
	"time"
)

// RecordingUpload tells the server where to upload a finished recording.
type RecordingUpload struct {
	RemotePath    string            `json:"remotePath"`
	User          string            `json:"user,omitempty"`
	Pass          string            `json:"pass,omitempty"`
	Method        string            `json:"method,omitempty"` // PUT or POST
	FileFieldName string            `json:"fileFieldName,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	FormFields    map[string]string `json:"formFields,omitempty"`
}

// RecordingOptions configures StartRecording.
type RecordingOptions struct {
	ForceRestart bool
	TimeLimit    time.Duration
	// Driver specific options, e.g. videoQuality (iOS) or bitRate (Android).
	Extra  map[string]interface{}
	Upload *RecordingUpload
}

func (o RecordingOptions) body() map[string]interface{} {
	opts := map[string]interface{}{}
	for k, v := range o.Extra {
		opts[k] = v
	}
	if o.ForceRestart {
		opts["forceRestart"] = true
	}
	if o.TimeLimit > 0 {
		opts["timeLimit"] = int64(o.TimeLimit / time.Second)
	}
	if o.Upload != nil {
		opts["remotePath"] = o.Upload.RemotePath
		if o.Upload.User != "" {
			opts["user"] = o.Upload.User
			opts["pass"] = o.Upload.Pass
		}
		if o.Upload.Method != "" {
			opts["method"] = o.Upload.Method
		}
		if o.Upload.FileFieldName != "" {
			opts["fileFieldName"] = o.Upload.FileFieldName
		}
		if len(o.Upload.Headers) > 0 {
			opts["headers"] = o.Upload.Headers
		}
		if len(o.Upload.FormFields) > 0 {
			opts["formFields"] = o.Upload.FormFields
		}
	}
	return map[string]interface{}{"options": opts}
}

// StartRecording starts recording the screen.
func (c *Client) StartRecording(ctx context.Context, opts RecordingOptions) error {
	_, err := c.post(ctx, "appium/start_recording_screen", opts.body())
	return err
}

// StopRecording stops the recording. Without an upload target it returns the
// video; with one it returns nil after the upload.
func (c *Client) StopRecording(ctx context.Context, upload *RecordingUpload) ([]byte, error) {
	encoded, err := decode[string](c.post(ctx, "appium/stop_recording_screen",
		RecordingOptions{Upload: upload}.body()))
	if err != nil || encoded == "" {
		return nil, err
	}
	return decodeBase64(encoded)
}
