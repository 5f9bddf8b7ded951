package crc_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/icza/bitio"
	"github.com/pchchv/crc"
)

func ExampleCRC_Checksum() {
	// CRC-32/ISO-HDLC, the checksum of gzip, zip and png.
	c := crc.New[uint32](crc.LittleEndian, 0x04c11db7, 0xffffffff, true, true, 0xffffffff)
	fmt.Printf("%08x\n", c.Checksum([]byte("123456789")))
	// Output:
	// cbf43926
}

func ExampleCRC_VerifyBytes() {
	// pack a small frame header bit by bit and
	// protect it with CRC-16/X-25
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	w.TryWriteBits(0x2c, 6)    // sync pattern
	w.TryWriteBits(0x01, 2)    // version
	w.TryWriteBits(0x5a5a, 16) // payload length
	if w.TryError != nil {
		log.Fatal(w.TryError)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	c := crc.New[uint16](crc.LittleEndian, 0x1021, 0xffff, true, true, 0xffff)
	header := buf.Bytes()
	frame := c.AppendChecksum(append([]byte(nil), header...), header)
	fmt.Println(c.VerifyBytes(frame))
	frame[0] ^= 0x01 // a single flipped bit is always detected
	fmt.Println(c.VerifyBytes(frame))
	// Output:
	// true
	// false
}

func ExampleNewHash32() {
	h := crc.NewHash32(crc.NewAlgorithm[uint32](crc.BigEndian, 0x04c11db7, 0xffffffff, true, true, 0xffffffff))
	if _, err := io.WriteString(h, "123456789"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%08x\n", h.Sum32())
	// Output:
	// cbf43926
}
