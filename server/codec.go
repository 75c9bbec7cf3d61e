package server

import (
	"bytes"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/websocket"
)

// MsgpackCodec sends values as binary msgpack frames. Field names follow the
// json tags so both formats carry the same keys.
var MsgpackCodec = websocket.Codec{Marshal: msgpackMarshal, Unmarshal: msgpackUnmarshal}

func msgpackMarshal(v interface{}) ([]byte, byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), websocket.BinaryFrame, nil
}

func msgpackUnmarshal(data []byte, _ byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// outboundCodec picks the codec for server to client messages from the
// "format" query parameter. Client messages are always JSON.
func outboundCodec(r *http.Request) websocket.Codec {
	if r != nil && r.URL.Query().Get("format") == "msgpack" {
		return MsgpackCodec
	}
	return websocket.JSON
}
