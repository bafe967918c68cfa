package signal

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipe_SendRecv(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[int](1)

	require.NoError(t, sender.Send(42))
	v, err := receiver.Recv()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestPipe_RecvDrainsBufferAfterSenderClose(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[string](2)

	require.NoError(t, sender.Send("first"))
	require.NoError(t, sender.Send("second"))
	sender.Close()

	v, err := receiver.Recv()
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	v, err = receiver.Recv()
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	_, err = receiver.Recv()
	var recvErr *RecvError
	require.True(t, stderrors.As(err, &recvErr))
}

func TestPipe_RecvFailsWhenSenderGone(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[int](0)

	done := make(chan error, 1)
	go func() {
		_, err := receiver.Recv()
		done <- err
	}()

	sender.Close()
	select {
	case err := <-done:
		var recvErr *RecvError
		assert.True(t, stderrors.As(err, &recvErr))
	case <-time.After(time.Second):
		t.Fatal("Recv did not return after sender closed")
	}
}

func TestPipe_SendFailsWhenReceiverGone(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[int](0)
	receiver.Close()

	err := sender.Send(1)
	var sendErr *SendError
	require.True(t, stderrors.As(err, &sendErr))
	assert.Equal(t, "send failed because receiver is gone", sendErr.Error())
}

func TestPipe_PendingSendUnblocksOnReceiverClose(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[int](0)

	done := make(chan error, 1)
	go func() {
		done <- sender.Send(7)
	}()

	receiver.Close()
	select {
	case err := <-done:
		var sendErr *SendError
		assert.True(t, stderrors.As(err, &sendErr))
	case <-time.After(time.Second):
		t.Fatal("Send did not return after receiver closed")
	}
}

func TestPipe_TrySend(t *testing.T) {
	t.Parallel()

	t.Run("full buffer", func(t *testing.T) {
		t.Parallel()
		sender, _ := Pipe[int](1)
		require.NoError(t, sender.TrySend(1))
		assert.Equal(t, ErrFull, sender.TrySend(2))
	})

	t.Run("receiver gone carries payload and cause", func(t *testing.T) {
		t.Parallel()
		sender, receiver := Pipe[string](1)
		receiver.Close()

		err := sender.TrySend("payload")
		var trySendErr *TrySendError
		require.True(t, stderrors.As(err, &trySendErr))
		assert.Equal(t, "payload", trySendErr.Value())
		assert.NotNil(t, trySendErr.SendError())
		assert.Same(t, error(trySendErr.SendError()), stderrors.Unwrap(trySendErr))
	})
}

func TestPipe_CloseIdempotent(t *testing.T) {
	t.Parallel()
	sender, receiver := Pipe[int](0)
	sender.Close()
	sender.Close()
	receiver.Close()
	receiver.Close()
}

func TestOneshot_Complete(t *testing.T) {
	t.Parallel()
	sender, receiver := Oneshot[string]()

	assert.True(t, sender.Complete("done"))
	v, err := receiver.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestOneshot_DropCancelsAwait(t *testing.T) {
	t.Parallel()
	sender, receiver := Oneshot[string]()

	done := make(chan error, 1)
	go func() {
		_, err := receiver.Await()
		done <- err
	}()

	sender.Drop()
	select {
	case err := <-done:
		var canceled *Canceled
		require.True(t, stderrors.As(err, &canceled))
		assert.Equal(t, "oneshot canceled", canceled.Error())
	case <-time.After(time.Second):
		t.Fatal("Await did not return after Drop")
	}
}

func TestOneshot_FirstOfCompleteAndDropWins(t *testing.T) {
	t.Parallel()
	sender, receiver := Oneshot[int]()

	require.True(t, sender.Complete(1))
	sender.Drop() // no effect after Complete
	assert.False(t, sender.Complete(2))

	v, err := receiver.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestOneshot_TryAwait(t *testing.T) {
	t.Parallel()

	t.Run("pending", func(t *testing.T) {
		t.Parallel()
		_, receiver := Oneshot[int]()
		_, ok, err := receiver.TryAwait()
		assert.False(t, ok)
		assert.NoError(t, err)
	})

	t.Run("completed", func(t *testing.T) {
		t.Parallel()
		sender, receiver := Oneshot[int]()
		sender.Complete(9)
		v, ok, err := receiver.TryAwait()
		assert.True(t, ok)
		assert.NoError(t, err)
		assert.Equal(t, 9, v)
	})

	t.Run("dropped", func(t *testing.T) {
		t.Parallel()
		sender, receiver := Oneshot[int]()
		sender.Drop()
		_, ok, err := receiver.TryAwait()
		assert.True(t, ok)
		var canceled *Canceled
		assert.True(t, stderrors.As(err, &canceled))
	})
}
