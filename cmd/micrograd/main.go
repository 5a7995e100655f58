// Package main trains a small MLP on a fixed 4-sample dataset and prints
// predictions before and after training.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/born-ml/micrograd/internal/train"
)

func main() {
	trainer, err := train.New(train.DefaultConfig(time.Now().UnixNano()), train.ToyDataset())
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	fmt.Println("\nypred before training:")
	fmt.Println()
	for _, y := range trainer.Predict() {
		fmt.Println(y)
	}

	fmt.Println("\nTraining...")
	trainer.Run(func(s train.Step) {
		fmt.Printf("loss: %v\n", s.Loss)
	})

	fmt.Println("\nypred after training:")
	fmt.Println()
	for _, y := range trainer.Predict() {
		fmt.Println(y)
	}
}
