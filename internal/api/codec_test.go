package api

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	require.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainStruct(t *testing.T) {
	in := &ListEntriesResponse{Entries: []Entry{{
		ID:        "e1",
		OwnerID:   "u1",
		Content:   "hoy fue un buen día",
		Emotion:   "joy",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}}}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), `"owner_id":"u1"`)

	out := &ListEntriesResponse{}
	require.NoError(t, Codec{}.Unmarshal(data, out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCodec_ProtoMessage(t *testing.T) {
	data, err := Codec{}.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))

	require.NoError(t, Codec{}.Unmarshal([]byte("{}"), &emptypb.Empty{}))
}

func TestCodec_UnmarshalError(t *testing.T) {
	err := Codec{}.Unmarshal([]byte("{"), &PingResponse{})
	require.Error(t, err)
}
