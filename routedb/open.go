package routedb

import(
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// opener hands out readers for local files, and for gs://bucket/object paths. The storage
// client is only created if a gs:// path turns up, and is shared for the rest of the load.
type opener struct {
	credentialsFile string
	client         *storage.Client
}

func newOpener(credentialsFile string) *opener {
	return &opener{credentialsFile: credentialsFile}
}

// {{{ SplitGCSPath

// SplitGCSPath breaks gs://bucket/some/object.yaml into bucket and object name.
func SplitGCSPath(path string) (bucket, object string, ok bool) {
	if !strings.HasPrefix(path, "gs://") { return "", "", false }
	rest := strings.TrimPrefix(path, "gs://")
	i := strings.Index(rest, "/")
	if i <= 0 || i == len(rest)-1 { return "", "", false }
	return rest[:i], rest[i+1:], true
}

// }}}
// {{{ o.Open

func (o *opener)Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "gs://") {
		return os.Open(path)
	}

	bucket,object,ok := SplitGCSPath(path)
	if !ok { return nil, fmt.Errorf("bad GCS path %q (want gs://bucket/object)", path) }

	if o.client == nil {
		opts := []option.ClientOption{}
		if o.credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(o.credentialsFile))
		}
		client,err := storage.NewClient(ctx, opts...)
		if err != nil { return nil, fmt.Errorf("GCS client: %v", err) }
		o.client = client
	}

	rdr,err := o.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("GCS-Open %s|%s: %v", bucket, object, err)
	}
	return rdr, nil
}

// }}}
// {{{ o.Close

func (o *opener)Close() error {
	if o.client == nil { return nil }
	err := o.client.Close()
	o.client = nil
	return err
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
