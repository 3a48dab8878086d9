package messaging

import (
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubToken struct {
	completed bool
	err       error
}

func (t stubToken) Wait() bool                     { return t.completed }
func (t stubToken) WaitTimeout(time.Duration) bool { return t.completed }
func (t stubToken) Error() error                   { return t.err }

func (t stubToken) Done() <-chan struct{} {
	done := make(chan struct{})
	if t.completed {
		close(done)
	}

	return done
}

type stubMQTTClient struct {
	pahomqtt.Client

	token        stubToken
	disconnected bool
}

func (c *stubMQTTClient) Connect() pahomqtt.Token { return c.token }
func (c *stubMQTTClient) Disconnect(uint)         { c.disconnected = true }

func useStubMQTTClient(t *testing.T, token stubToken) *stubMQTTClient {
	t.Helper()

	stub := &stubMQTTClient{token: token}
	original := newMQTTClient
	newMQTTClient = func(*pahomqtt.ClientOptions) pahomqtt.Client { return stub }
	t.Cleanup(func() { newMQTTClient = original })

	return stub
}

func TestConnectMQTT_TimeoutDisconnects(t *testing.T) {
	stub := useStubMQTTClient(t, stubToken{completed: false})

	client, err := connectMQTT(pahomqtt.NewClientOptions(), time.Millisecond)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "timeout")
	assert.True(t, stub.disconnected)
}

func TestConnectMQTT_ErrorDisconnects(t *testing.T) {
	stub := useStubMQTTClient(t, stubToken{completed: true, err: errors.New("not authorized")})

	client, err := connectMQTT(pahomqtt.NewClientOptions(), time.Second)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "not authorized")
	assert.True(t, stub.disconnected)
}

func TestConnectMQTT_Success(t *testing.T) {
	stub := useStubMQTTClient(t, stubToken{completed: true})

	client, err := connectMQTT(pahomqtt.NewClientOptions(), time.Second)
	require.NoError(t, err)
	assert.Same(t, stub, client)
	assert.False(t, stub.disconnected)
}
