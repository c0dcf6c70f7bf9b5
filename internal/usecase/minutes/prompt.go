package minutes

// systemPrompt is the fixed instruction given to the chat model. The four
// section headings are the output contract; the model is trusted to follow
// them, nothing verifies the structure afterwards.
const systemPrompt = `
You will receive the translation of a meeting audio and need to analyze that translation to create the Minutes of Meeting (MoM).

Provide only the MoM in the following format:

### Minutes of Meeting (MoM):
(Leave this blank)

### Attendees:
(Leave this blank)

### Meeting Notes/Tasks:
- Analyze the translation and list down the notes and discussion points of the meeting.
- This section should be in bullet points only.

### Tasks:
- Analyze the translation and list down the tasks from the meeting.
- This section should be in bullet points only.
- Provide detailed descriptions of each task.

----------------------

Provide only the MoM in the specified format.

`

// chatTemperature allows stylistic variation in the generated document,
// unlike the deterministic transcription step
const chatTemperature = 0.7
