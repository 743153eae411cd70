package main

import (
	"fmt"
	"log"

	hashtable "github.com/Timothy-itayi/go-hashtable"
)

func main() {
	t, err := hashtable.New()
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Table created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key-%d", i)
		value := fmt.Sprintf("value-%d", i*100)

		if err := t.Insert(key, value); err != nil {
			log.Fatalf("Failed to insert %s: %v", key, err)
		}
	}

	fmt.Printf("Inserted %d key-value pairs (capacity %d)\n", t.Len(), t.Cap())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)

		if value, found := t.Search(key); found {
			fmt.Printf("%s => %s\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	if err := t.Insert("key-2", "999"); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}

	// Verify the update
	if value, found := t.Search("key-2"); found {
		fmt.Printf("Updated key-2 => %s\n", value)
	}

	// Delete a key and confirm it is gone
	t.Delete("key-4")
	if _, found := t.Search("key-4"); !found {
		fmt.Println("key-4 deleted")
	}

	fmt.Printf("Final count: %d\n", t.Len())
	fmt.Println("Example completed successfully")
}
